package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) *PageCache {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPutAndGet(t *testing.T) {
	c := newTestCache(t, time.Hour)

	require.NoError(t, c.Put("https://example.com/page", "<html>body</html>"))

	body, ok := c.Get("https://example.com/page")
	assert.True(t, ok)
	assert.Equal(t, "<html>body</html>", body)
}

func TestGetMiss(t *testing.T) {
	c := newTestCache(t, time.Hour)

	_, ok := c.Get("https://example.com/never-fetched")
	assert.False(t, ok)
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := newTestCache(t, time.Hour)

	require.NoError(t, c.Put("https://example.com/page", "stale"))

	// Advance the clock past the TTL.
	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok := c.Get("https://example.com/page")
	assert.False(t, ok)
}

func TestPutReplaces(t *testing.T) {
	c := newTestCache(t, time.Hour)

	require.NoError(t, c.Put("https://example.com/page", "old"))
	require.NoError(t, c.Put("https://example.com/page", "new"))

	body, ok := c.Get("https://example.com/page")
	assert.True(t, ok)
	assert.Equal(t, "new", body)
}

func TestDefaultTTL(t *testing.T) {
	c := newTestCache(t, 0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
