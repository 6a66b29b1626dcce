package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedDataItemsVideoGame(t *testing.T) {
	html := `<html><body>
		<script type="application/ld+json">
		{
			"@type": "VideoGame",
			"name": "Super Game",
			"image": "https://img.example.com/box.png",
			"url": "https://store.example.com/super-game",
			"offers": {"price": "29.99", "priceCurrency": "USD"},
			"sku": "SG-001"
		}
		</script>
	</body></html>`

	items := LinkedDataItems(html, "https://store.example.com/list")
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Super Game", item["name"])
	assert.Equal(t, "https://img.example.com/box.png", item["image"])
	assert.Equal(t, "https://store.example.com/super-game", item["url"])
	assert.Equal(t, "SG-001", item["id"])

	price, ok := item["price"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "29.99", price["amount"])
	assert.Equal(t, "USD", price["currency"])
}

func TestLinkedDataItemsGraphContainer(t *testing.T) {
	html := `<script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Store"},
			{"@type": "Product", "name": "Graph Game"},
			{"@type": "VideoGame", "name": "Other Graph Game"}
		]
	}
	</script>`

	items := LinkedDataItems(html, "https://store.example.com/list")
	require.Len(t, items, 2)
	assert.Equal(t, "Graph Game", items[0]["name"])
	assert.Equal(t, "Other Graph Game", items[1]["name"])
}

func TestLinkedDataItemsArrayBlock(t *testing.T) {
	html := `<script type="application/ld+json">
	[
		{"@type": "VideoGame", "name": "First"},
		{"@type": "BreadcrumbList", "name": "ignored"},
		{"@type": "product", "name": "Second"}
	]
	</script>`

	items := LinkedDataItems(html, "https://store.example.com/list")
	require.Len(t, items, 2)
}

func TestLinkedDataItemsMalformedBlockSkipped(t *testing.T) {
	html := `
	<script type="application/ld+json">{not valid json</script>
	<script type="application/ld+json">{"@type": "VideoGame", "name": "Survivor"}</script>`

	items := LinkedDataItems(html, "https://store.example.com/list")
	require.Len(t, items, 1)
	assert.Equal(t, "Survivor", items[0]["name"])
}

func TestLinkedDataItemsFallbacks(t *testing.T) {
	html := `<script type="application/ld+json">
	{"@type": "VideoGame", "name": "Bare Game", "image": ["https://img.example.com/1.png", "https://img.example.com/2.png"]}
	</script>`

	items := LinkedDataItems(html, "https://store.example.com/list")
	require.Len(t, items, 1)

	// First image from a list, page URL as href fallback.
	assert.Equal(t, "https://img.example.com/1.png", items[0]["image"])
	assert.Equal(t, "https://store.example.com/list", items[0]["url"])
}

func TestLinkedDataItemsNoBlocks(t *testing.T) {
	assert.Empty(t, LinkedDataItems("<html><body><p>plain page</p></body></html>", "https://x.example.com"))
}
