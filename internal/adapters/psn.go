package adapters

import (
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

const psnPlaceholder = "https://store.playstation.com/store/img/og-default.png"

// NewPSN builds the PlayStation store adapter. The storefront renders from
// embedded page data, so Strategy B scrapes the browse listings.
func NewPSN(config catalog.AdapterConfig, client *fetch.Client) Adapter {
	loc := config.LocalePath()
	base := "https://store.playstation.com/" + loc
	return &site{
		store:  catalog.StorePSN,
		caps:   catalog.Capabilities{ReturnsPartialPrice: true},
		config: config,
		endpoints: EndpointConfig{
			SeedPages: []string{
				base + "/pages/browse",
				base + "/pages/deals",
				base + "/pages/latest",
			},
		},
		client: client,
		raw: catalog.RawOptions{
			Store:           catalog.StorePSN,
			Placeholder:     psnPlaceholder,
			StoreRoot:       base + "/",
			ProductURL:      base + "/product/%s",
			DefaultPlatform: "PS5",
			Kind:            "game",
		},
	}
}
