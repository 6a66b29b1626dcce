// Package cache provides a TTL-based SQLite cache for fetched page and API
// bodies, so repeated crawl runs stay polite to the storefronts.
package cache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTTL is the default time-to-live for cached bodies (12 hours). A
// catalog crawl is a periodic batch job, not a live sync.
const DefaultTTL = 12 * time.Hour

const schema = `CREATE TABLE IF NOT EXISTS fetch_cache (
	url TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// PageCache stores fetched bodies keyed by URL with a fixed TTL.
type PageCache struct {
	db  *sql.DB
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time
}

// New opens (creating if needed) a page cache at dbPath. A non-positive ttl
// falls back to DefaultTTL.
func New(dbPath string, ttl time.Duration) (*PageCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &PageCache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached body for url if present and not expired.
func (c *PageCache) Get(url string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var body string
	var fetchedAt int64
	err := c.db.QueryRow("SELECT body, fetched_at FROM fetch_cache WHERE url = ?", url).
		Scan(&body, &fetchedAt)
	if err != nil {
		return "", false
	}
	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return "", false
	}
	slog.Debug("Cache hit", "url", url)
	return body, true
}

// Put stores the body for url, replacing any previous entry.
func (c *PageCache) Put(url, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO fetch_cache (url, body, fetched_at) VALUES (?, ?, ?)",
		url, body, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache body: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}
