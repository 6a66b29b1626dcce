package scrape

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cast"
)

// productTypes are the linked-data @type values accepted as catalog items.
var productTypes = map[string]bool{
	"product":   true,
	"videogame": true,
}

// LinkedDataItems extracts all product/video-game entities from the page's
// application/ld+json blocks, already coerced onto the API field surface.
// Malformed blocks are skipped; the page simply yields fewer records.
func LinkedDataItems(html, baseURL string) []map[string]any {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var items []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var block any
		if err := json.Unmarshal([]byte(sel.Text()), &block); err != nil {
			slog.Debug("Skipping malformed linked-data block", "url", baseURL, "error", err)
			return
		}

		blocks, ok := block.([]any)
		if !ok {
			blocks = []any{block}
		}
		for _, b := range blocks {
			entity, ok := b.(map[string]any)
			if !ok {
				continue
			}
			if isProduct(entity) {
				items = append(items, coerceLinkedData(entity, baseURL))
				continue
			}
			// Some publishers wrap entities in a graph container.
			graph, ok := entity["@graph"].([]any)
			if !ok {
				continue
			}
			for _, g := range graph {
				member, ok := g.(map[string]any)
				if !ok || !isProduct(member) {
					continue
				}
				items = append(items, coerceLinkedData(member, baseURL))
			}
		}
	})
	return items
}

func isProduct(entity map[string]any) bool {
	return productTypes[strings.ToLower(cast.ToString(entity["@type"]))]
}

// coerceLinkedData maps a linked-data entity onto the API item surface so
// the shared normalization routine can handle it.
func coerceLinkedData(entity map[string]any, baseURL string) map[string]any {
	item := map[string]any{
		"name": entity["name"],
	}

	switch img := entity["image"].(type) {
	case string:
		item["image"] = img
	case []any:
		if len(img) > 0 {
			item["image"] = cast.ToString(img[0])
		}
	}

	offers, ok := entity["offers"].(map[string]any)
	if !ok {
		if list, ok := entity["offers"].([]any); ok && len(list) > 0 {
			offers, _ = list[0].(map[string]any)
		}
	}
	if offers != nil {
		item["price"] = map[string]any{
			"amount":   offers["price"],
			"currency": offers["priceCurrency"],
		}
	}

	if url := cast.ToString(entity["url"]); url != "" {
		item["url"] = url
	} else {
		item["url"] = baseURL
	}

	for _, key := range []string{"sku", "productID", "mpn"} {
		if id := cast.ToString(entity[key]); id != "" {
			item["id"] = id
			break
		}
	}

	return item
}
