package adapters

import (
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

const xboxPlaceholder = "https://assets.xboxservices.com/assets/og-default.png"

// NewXbox builds the Xbox store adapter. Xbox has both a search API and
// scrapeable listing pages; the adapter uses both strategies.
func NewXbox(config catalog.AdapterConfig, client *fetch.Client) Adapter {
	loc := config.LocalePath()
	return &site{
		store:  catalog.StoreXbox,
		caps:   catalog.Capabilities{Pagination: true, ReturnsPartialPrice: true},
		config: config,
		endpoints: EndpointConfig{
			SearchAPI: "https://emerald.xboxservices.com/xboxcomfd/search?q={query}&count={count}&market={country}&locale={locale}&page={page}",
			SeedPages: []string{
				"https://www.xbox.com/" + loc + "/games/all-games",
			},
		},
		client: client,
		raw: catalog.RawOptions{
			Store:           catalog.StoreXbox,
			Placeholder:     xboxPlaceholder,
			StoreRoot:       "https://www.xbox.com/" + loc + "/games/",
			ProductURL:      "https://www.xbox.com/" + loc + "/games/store/%s",
			DefaultPlatform: "Xbox",
			Kind:            "game",
		},
	}
}
