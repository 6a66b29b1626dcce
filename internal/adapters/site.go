package adapters

import (
	"context"
	"log/slog"
	"time"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
	"github.com/ephellon/gamecatalog/internal/scrape"
)

// seedQueries are the query tokens used against search APIs that require a
// non-empty query: one pass per letter of the alphabet.
const seedQueries = "abcdefghijklmnopqrstuvwxyz"

// seedPageDelay paces seed page fetches, on top of the domain limiter.
const seedPageDelay = 200 * time.Millisecond

// seedQueryDelay paces the letter queries of the API strategy, on top of
// the per-page delay.
const seedQueryDelay = 100 * time.Millisecond

// site is the crawl machinery shared by all concrete adapters. It holds
// only immutable per-run configuration; no state is mutated during a crawl.
type site struct {
	store     catalog.Store
	caps      catalog.Capabilities
	config    catalog.AdapterConfig
	endpoints EndpointConfig
	client    *fetch.Client
	raw       catalog.RawOptions

	// queryDelay overrides seedQueryDelay when non-zero.
	queryDelay time.Duration
}

func (s *site) Store() catalog.Store {
	return s.store
}

func (s *site) Capabilities() catalog.Capabilities {
	return s.caps
}

// IterGames runs Strategy A (API pagination) when a search API is
// configured, then Strategy B (seed page scraping) over the seed pages.
// Failures are page/query-local: the crawl favors availability over
// completeness and only stops on context cancellation.
func (s *site) IterGames(ctx context.Context, yield func(catalog.Record)) error {
	if s.endpoints.SearchAPI != "" {
		delay := s.queryDelay
		if delay == 0 {
			delay = seedQueryDelay
		}
		p := scrape.NewPaginator(s.client, s.endpoints.SearchAPI, s.config)
		for _, ch := range seedQueries {
			if err := p.Pages(ctx, string(ch), func(item catalog.RawItem) {
				s.emit(item, yield)
			}); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				slog.Warn("Search query failed, skipping",
					"store", s.store, "query", string(ch), "error", err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	for _, page := range s.endpoints.SeedPages {
		if err := s.scrapePage(ctx, page, yield); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("Seed page failed, skipping",
				"store", s.store, "url", page, "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(seedPageDelay):
		}
	}
	return nil
}

// scrapePage runs both sub-parsers against one listing page, accumulating
// records from each. A malformed embedded payload costs only that
// sub-parser's records; the linked-data pass still runs.
func (s *site) scrapePage(ctx context.Context, url string, yield func(catalog.Record)) error {
	html, err := s.client.GetText(ctx, url, map[string]string{"Accept": "text/html"})
	if err != nil {
		return err
	}

	if payload := scrape.EmbeddedPayload(html, scrape.DefaultEmbeddedScriptID); payload != "" {
		items, err := scrape.WalkEmbedded(payload)
		if err != nil {
			slog.Warn("Malformed embedded payload, skipping",
				"store", s.store, "url", url, "error", err)
		}
		for _, it := range items {
			s.emit(scrape.Coerce(it, url), yield)
		}
	}

	for _, it := range scrape.LinkedDataItems(html, url) {
		s.emit(it, yield)
	}
	return nil
}

func (s *site) emit(item catalog.RawItem, yield func(catalog.Record)) {
	rec, err := catalog.FromRaw(item, s.raw)
	if err != nil {
		slog.Debug("Skipping unusable item", "store", s.store, "error", err)
		return
	}
	yield(*rec)
}
