// Package scrape implements the two content-extraction strategies shared by
// all store adapters: structured API pagination and embedded/linked-data
// HTML scraping, plus the coercion that puts both on one field surface.
package scrape

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

// itemKeys is the priority list of container keys probed for the item array
// in API responses and embedded payloads.
var itemKeys = []string{"products", "items", "results"}

// DefaultPageSize is the page size requested from search APIs.
const DefaultPageSize = 60

// defaultPageDelay paces page fetches within one query, independent of the
// domain limiter.
const defaultPageDelay = 50 * time.Millisecond

// Paginator drives a templated search API, fetching JSON pages with an
// increasing page index until the stop policy fires.
type Paginator struct {
	client   *fetch.Client
	template string
	config   catalog.AdapterConfig
	pageSize int
	delay    time.Duration

	// pageDone decides when a query is exhausted. The default is the naive
	// fewer-than-page-size heuristic: a false early stop only loses data,
	// never corrupts it, and cross-page duplicates are absorbed by dedup.
	pageDone func(got, pageSize int) bool
}

// NewPaginator creates a paginator for the given URL template. The template
// carries {query}, {count}, {country}, {locale} and {page} substitution
// points.
func NewPaginator(client *fetch.Client, template string, config catalog.AdapterConfig) *Paginator {
	return &Paginator{
		client:   client,
		template: template,
		config:   config,
		pageSize: DefaultPageSize,
		delay:    defaultPageDelay,
		pageDone: func(got, pageSize int) bool { return got < pageSize },
	}
}

// PageURL expands the template for one query and page index.
func (p *Paginator) PageURL(query string, page int) string {
	r := strings.NewReplacer(
		"{query}", query,
		"{count}", strconv.Itoa(p.pageSize),
		"{country}", p.config.Country,
		"{locale}", p.config.Locale,
		"{page}", strconv.Itoa(page),
	)
	return r.Replace(p.template)
}

// Pages fetches every page for one query, passing each raw item to yield.
// A fetch or decode failure aborts only this query; the caller skips to the
// next seed query.
func (p *Paginator) Pages(ctx context.Context, query string, yield func(catalog.RawItem)) error {
	for page := 0; ; page++ {
		js, err := p.client.GetJSON(ctx, p.PageURL(query, page), nil)
		if err != nil {
			return err
		}

		items := ItemsFromAPI(js)
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				yield(m)
			}
		}

		if p.pageDone(len(items), p.pageSize) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
}

// ItemsFromAPI locates the item array in an API response: the first present
// key among products/items/results, looking one level deeper inside "data"
// when the top level has none.
func ItemsFromAPI(js map[string]any) []any {
	if items := itemList(js); items != nil {
		return items
	}
	if data, ok := js["data"].(map[string]any); ok {
		if items := itemList(data); items != nil {
			return items
		}
	}
	return nil
}

func itemList(m map[string]any) []any {
	for _, key := range itemKeys {
		if v, ok := m[key].([]any); ok && len(v) > 0 {
			return v
		}
	}
	return nil
}
