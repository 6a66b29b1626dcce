package adapters

import (
	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/fetch"
)

const nintendoPlaceholder = "https://www.nintendo.com/etc.clientlibs/ncom/clientlibs/clientlib-ncom/resources/img/nintendo_red.svg"

// NewNintendo builds the Nintendo store adapter. Nintendo's public surface
// varies by region and usually embeds data in the page, so the adapter
// leans on Strategy B over a handful of broad catalog listings.
func NewNintendo(config catalog.AdapterConfig, client *fetch.Client) Adapter {
	loc := config.LocalePath()
	base := "https://www.nintendo.com/" + loc + "/store/games"
	return &site{
		store:  catalog.StoreNintendo,
		caps:   catalog.Capabilities{Pagination: true, ReturnsPartialPrice: true},
		config: config,
		endpoints: EndpointConfig{
			SeedPages: []string{
				base,
				base + "/?f=available-now",
				base + "/?f=on-sale",
				base + "/?f=new-releases",
				base + "/?f=coming-soon",
			},
		},
		client: client,
		raw: catalog.RawOptions{
			Store:           catalog.StoreNintendo,
			Placeholder:     nintendoPlaceholder,
			StoreRoot:       "https://www.nintendo.com/" + loc + "/store/",
			ProductURL:      "https://www.nintendo.com/" + loc + "/store/products/%s/",
			DefaultPlatform: "Switch",
			Kind:            "game",
		},
	}
}
