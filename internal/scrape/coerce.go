package scrape

import "github.com/ephellon/gamecatalog/internal/catalog"

// Coerce converts one heterogeneous tile/card from an embedded payload into
// an item on the API field surface, so a single normalization routine
// handles both strategies. Unusable input coerces to an empty item, which
// normalization rejects on the empty-title invariant.
func Coerce(it any, baseURL string) catalog.RawItem {
	src, ok := it.(map[string]any)
	if !ok {
		return catalog.RawItem{}
	}
	item := catalog.RawItem{}

	for _, key := range []string{"title", "name", "productTitle"} {
		if v, ok := src[key]; ok && v != nil {
			item["title"] = v
			break
		}
	}

	if v := firstPresent(src, "imageUrl", "image"); v != nil {
		item["imageUrl"] = v
	} else if imgs := firstPresent(src, "images", "keyImages"); imgs != nil {
		item["keyImages"] = imgs
	}

	if link := firstPresent(src, "url", "href", "productUrl"); link != nil {
		item["productUrl"] = link
	} else {
		item["productUrl"] = baseURL
	}

	// Price may be a nested object or a bare display string.
	switch price := firstPresent(src, "price", "displayPrice", "priceDisplay").(type) {
	case map[string]any:
		item["price"] = price
	case string:
		item["displayPrice"] = price
	}

	if id := firstPresent(src, "nsuid", "id", "productId"); id != nil {
		item["nsuid"] = id
	}

	if plats, ok := src["platforms"].([]any); ok && len(plats) > 0 {
		item["platforms"] = plats
	}

	if free, ok := src["isFree"]; ok {
		item["isFree"] = free
	}

	return item
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
