// Package adapters holds the store adapter interface and its concrete
// steam/psn/xbox/nintendo instantiations. An adapter is a thin configuration
// of the shared extraction engine: endpoints, placeholders and platform
// defaults; the crawl mechanics live in internal/scrape.
package adapters

import (
	"context"

	"github.com/ephellon/gamecatalog/internal/catalog"
)

// Adapter produces a lazy sequence of normalized records for one store.
// The orchestrator and writer depend only on this interface plus the store
// identity, never on adapter internals.
type Adapter interface {
	Store() catalog.Store
	Capabilities() catalog.Capabilities

	// IterGames pushes every extractable record to yield, continuing past
	// individual item and page failures. It returns an error only on
	// context cancellation.
	IterGames(ctx context.Context, yield func(catalog.Record)) error
}

// EndpointConfig describes where one adapter instance gets its data: an
// optional templated search-API URL and the listing pages scraped when no
// API is available. Built once at construction, immutable thereafter.
type EndpointConfig struct {
	// SearchAPI is a URL template with {query}, {count}, {country},
	// {locale} and {page} substitution points. Empty disables Strategy A.
	SearchAPI string

	// SeedPages are listing pages that enumerate many titles, scraped by
	// Strategy B.
	SeedPages []string
}
