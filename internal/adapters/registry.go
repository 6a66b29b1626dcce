package adapters

import (
	"fmt"
	"strings"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

type factory func(catalog.AdapterConfig, *fetch.Client) Adapter

var registry = map[catalog.Store]factory{
	catalog.StoreSteam:    NewSteam,
	catalog.StorePSN:      NewPSN,
	catalog.StoreXbox:     NewXbox,
	catalog.StoreNintendo: NewNintendo,
}

// New builds the adapter for the named store. An unknown store name is a
// caller-facing configuration error, the only fatal condition a store crawl
// can hit.
func New(name string, config catalog.AdapterConfig, client *fetch.Client) (Adapter, error) {
	store := catalog.Store(strings.ToLower(strings.TrimSpace(name)))
	ctor, ok := registry[store]
	if !ok {
		return nil, fmt.Errorf("unknown store: %q", name)
	}
	return ctor(config, client), nil
}
