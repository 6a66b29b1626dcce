package adapters

import (
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

const steamPlaceholder = "https://store.cloudflare.steamstatic.com/public/shared/images/header/logo_steam.svg"

// NewSteam builds the Steam store adapter. Steam exposes a stable JSON
// search endpoint, so Strategy A does all the work here.
func NewSteam(config catalog.AdapterConfig, client *fetch.Client) Adapter {
	return &site{
		store:  catalog.StoreSteam,
		caps:   catalog.Capabilities{Pagination: true},
		config: config,
		endpoints: EndpointConfig{
			SearchAPI: "https://store.steampowered.com/api/storesearch/?term={query}&count={count}&page={page}&cc={country}&l={locale}",
		},
		client: client,
		raw: catalog.RawOptions{
			Store:           catalog.StoreSteam,
			Placeholder:     steamPlaceholder,
			StoreRoot:       "https://store.steampowered.com/",
			ProductURL:      "https://store.steampowered.com/app/%s/",
			DefaultPlatform: "PC",
			Kind:            "game",
		},
	}
}
