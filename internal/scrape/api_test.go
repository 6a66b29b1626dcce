package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
	"github.com/ephellon/gamecatalog/internal/ratelimit"
)

func TestItemsFromAPI(t *testing.T) {
	tests := []struct {
		name string
		js   map[string]any
		want int
	}{
		{"products key", map[string]any{"products": []any{map[string]any{}, map[string]any{}}}, 2},
		{"items key", map[string]any{"items": []any{map[string]any{}}}, 1},
		{"results key", map[string]any{"results": []any{map[string]any{}}}, 1},
		{"nested under data", map[string]any{"data": map[string]any{"results": []any{map[string]any{}}}}, 1},
		{"priority order", map[string]any{"products": []any{map[string]any{}}, "results": []any{map[string]any{}, map[string]any{}}}, 1},
		{"empty response", map[string]any{}, 0},
		{"empty list ignored", map[string]any{"products": []any{}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ItemsFromAPI(tt.js), tt.want)
		})
	}
}

func TestPageURL(t *testing.T) {
	p := NewPaginator(nil,
		"https://api.example.com/search?q={query}&count={count}&country={country}&locale={locale}&page={page}",
		catalog.AdapterConfig{Country: "US", Locale: "en-US"})

	url := p.PageURL("a", 3)
	assert.Equal(t, "https://api.example.com/search?q=a&count=60&country=US&locale=en-US&page=3", url)
}

func testFetchClient() *fetch.Client {
	return fetch.NewClient(fetch.WithLimiter(ratelimit.NewDomainLimiter(time.Millisecond)))
}

func TestPagesStopsOnShortPage(t *testing.T) {
	// Page 0 is full, page 1 is short: pagination must stop after page 1.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		count := DefaultPageSize
		if page != "0" {
			count = 3
		}
		items := make([]any, count)
		for i := range items {
			items[i] = map[string]any{"title": fmt.Sprintf("Game %s-%d", page, i)}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"products": items})
	}))
	defer srv.Close()

	p := NewPaginator(testFetchClient(), srv.URL+"/search?q={query}&count={count}&page={page}", catalog.DefaultAdapterConfig())
	p.delay = time.Millisecond

	var got []catalog.RawItem
	err := p.Pages(context.Background(), "a", func(item catalog.RawItem) {
		got = append(got, item)
	})
	require.NoError(t, err)
	assert.Len(t, got, DefaultPageSize+3)
}

func TestPagesSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []any{map[string]any{"title": "Only Game"}},
		})
	}))
	defer srv.Close()

	p := NewPaginator(testFetchClient(), srv.URL+"/search?page={page}", catalog.DefaultAdapterConfig())

	var got []catalog.RawItem
	err := p.Pages(context.Background(), "o", func(item catalog.RawItem) {
		got = append(got, item)
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Only Game", got[0]["title"])
}

func TestPagesPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewPaginator(testFetchClient(), srv.URL+"/search?page={page}", catalog.DefaultAdapterConfig())

	err := p.Pages(context.Background(), "a", func(catalog.RawItem) {})
	assert.Error(t, err)
}
