// Package catalog defines the canonical record schema shared by every store
// adapter, plus the title/price normalization and dedup helpers that keep
// heterogeneous source data on one surface.
package catalog

import "strings"

// Store identifies a supported storefront.
type Store string

const (
	StoreSteam    Store = "steam"
	StorePSN      Store = "psn"
	StoreXbox     Store = "xbox"
	StoreNintendo Store = "nintendo"
)

// Stores lists all supported storefronts in a stable order.
var Stores = []Store{StoreSteam, StorePSN, StoreXbox, StoreNintendo}

// Valid reports whether the store is one of the known storefronts.
func (s Store) Valid() bool {
	switch s {
	case StoreSteam, StorePSN, StoreXbox, StoreNintendo:
		return true
	}
	return false
}

// validRatings is the closed rating vocabulary, lower-cased.
var validRatings = map[string]bool{
	"everyone":       true,
	"everyone 10+":   true,
	"rating pending": true,
	"teen":           true,
	"mature 17+":     true,
	"none":           true,
}

// Record is the normalized, store-tagged representation of one catalog
// entry. Records are built through NewRecord, which applies all invariants,
// and are never mutated afterwards.
type Record struct {
	Store     Store          `json:"store"`
	Name      string         `json:"name"`
	Price     string         `json:"price"`
	Image     string         `json:"image"`
	Href      string         `json:"href"`
	UUID      string         `json:"uuid,omitempty"`
	Platforms []string       `json:"platforms"`
	Rating    string         `json:"rating,omitempty"`
	Kind      string         `json:"type,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// NewRecord applies the construction-time invariants to r and returns the
// normalized record: price is never empty ("Unavailable" fallback), platforms
// carry no case-insensitive duplicates with first-occurrence order preserved,
// and ratings are lower-cased and restricted to the known vocabulary.
func NewRecord(r Record) Record {
	r.Price = strings.TrimSpace(r.Price)
	if r.Price == "" {
		r.Price = "Unavailable"
	}
	r.Platforms = dedupePlatforms(r.Platforms)
	r.Rating = strings.ToLower(strings.TrimSpace(r.Rating))
	if !validRatings[r.Rating] {
		r.Rating = ""
	}
	return r
}

func dedupePlatforms(platforms []string) []string {
	seen := make(map[string]bool, len(platforms))
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		p = strings.TrimSpace(p)
		if p == "" || seen[strings.ToLower(p)] {
			continue
		}
		seen[strings.ToLower(p)] = true
		out = append(out, p)
	}
	return out
}

// OutputItem is the externally visible projection of a Record used for the
// per-letter catalog files. It drops the store tag and the extra bag.
type OutputItem struct {
	Name      string   `json:"name"`
	Kind      string   `json:"type,omitempty"`
	Price     string   `json:"price"`
	Image     string   `json:"image"`
	Href      string   `json:"href"`
	UUID      string   `json:"uuid,omitempty"`
	Platforms []string `json:"platforms"`
	Rating    string   `json:"rating,omitempty"`
}

// OutputItem projects the record into its external shape.
func (r Record) OutputItem() OutputItem {
	return OutputItem{
		Name:      r.Name,
		Kind:      r.Kind,
		Price:     r.Price,
		Image:     r.Image,
		Href:      r.Href,
		UUID:      r.UUID,
		Platforms: r.Platforms,
		Rating:    r.Rating,
	}
}

// AdapterConfig carries the region settings for one crawl run. It is
// immutable for the duration of the run and passed to every fetch.
type AdapterConfig struct {
	Country string
	Locale  string
}

// DefaultAdapterConfig returns the US/en-US configuration.
func DefaultAdapterConfig() AdapterConfig {
	return AdapterConfig{Country: "US", Locale: "en-US"}
}

// LocalePath returns the locale in URL-path form, e.g. "en-us".
func (c AdapterConfig) LocalePath() string {
	return strings.ToLower(strings.ReplaceAll(c.Locale, "_", "-"))
}

// Capabilities declares what an adapter can do. Consumed by the orchestrator
// to decide whether to expect multiple pages and whether numeric price
// parsing can be trusted.
type Capabilities struct {
	Pagination          bool
	ReturnsPartialPrice bool
}
