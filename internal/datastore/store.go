// Package datastore optionally persists crawled records, either to a local
// SQLite database or to a remote Datasette-style insert API.
package datastore

import (
	"strings"

	"github.com/ephellon/gamecatalog/internal/catalog"
)

// Store defines the interface for crawl-result persistence.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// GamesSchema is the relational shape of one crawled record.
const GamesSchema = `CREATE TABLE IF NOT EXISTS games (
	store TEXT NOT NULL,
	uuid TEXT,
	name TEXT NOT NULL,
	price TEXT NOT NULL,
	image TEXT,
	href TEXT,
	platforms TEXT,
	rating TEXT,
	type TEXT,
	canonical_key TEXT
)`

// GamesTable is the table BatchInsert targets for crawl results.
const GamesTable = "games"

// RecordToMap flattens a record for database insertion.
func RecordToMap(r catalog.Record) map[string]any {
	return map[string]any{
		"store":         string(r.Store),
		"uuid":          r.UUID,
		"name":          r.Name,
		"price":         r.Price,
		"image":         r.Image,
		"href":          r.Href,
		"platforms":     strings.Join(r.Platforms, ","),
		"rating":        r.Rating,
		"type":          r.Kind,
		"canonical_key": catalog.CanonicalKey(r.Name),
	}
}
