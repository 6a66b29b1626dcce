package catalog

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/ephellon/gamecatalog/internal/errors"
)

// RawItem is one loosely typed source item: a mapping from field name to a
// string, number, nested mapping, or list. Both the API strategy and the
// coerced HTML strategy emit this surface.
type RawItem = map[string]any

// RawOptions carries the store-specific fallbacks used while normalizing a
// raw item into a Record.
type RawOptions struct {
	Store Store
	// Placeholder is the image URL used when the item carries none.
	Placeholder string
	// StoreRoot is the href fallback when no product URL can be built.
	StoreRoot string
	// ProductURL is a printf pattern with one %s for a slug or native id.
	ProductURL string
	// DefaultPlatform is implied when the source lists no platforms.
	DefaultPlatform string
	// Kind tags the record's classification, e.g. "game".
	Kind string
}

var (
	titleKeys = []string{"title", "name", "productTitle"}
	imageKeys = []string{"image", "imageUrl", "boxArt", "heroBanner"}
	linkKeys  = []string{"productUrl", "url", "webUrl", "href"}
	idKeys    = []string{"nsuid", "uuid", "id", "productId", "sku"}
)

// FromRaw converts one coerced raw item into a Record, or returns a
// ValidationError when the item is unusable (empty title after cleanup).
func FromRaw(raw RawItem, opts RawOptions) (*Record, error) {
	name := StripEditionNoise(firstString(raw, titleKeys...))
	if name == "" {
		return nil, errors.NewValidationError("name", "empty title after cleanup")
	}

	rec := NewRecord(Record{
		Store:     opts.Store,
		Name:      name,
		Price:     rawPrice(raw),
		Image:     rawImage(raw, opts.Placeholder),
		Href:      rawHref(raw, opts),
		UUID:      firstString(raw, idKeys...),
		Platforms: rawPlatforms(raw, opts.DefaultPlatform),
		Rating:    firstString(raw, "rating", "esrbRating", "contentRating"),
		Kind:      opts.Kind,
	})
	return &rec, nil
}

func rawImage(raw RawItem, placeholder string) string {
	if img := firstString(raw, imageKeys...); img != "" {
		return img
	}
	for _, key := range []string{"images", "keyImages"} {
		list, ok := raw[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		if url := preferBoxArt(list); url != "" {
			return url
		}
	}
	return placeholder
}

// preferBoxArt picks the image tagged as box/pack/cover art, else the first
// entry with a usable URL.
func preferBoxArt(list []any) string {
	var first string
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			if first == "" {
				first = cast.ToString(entry)
			}
			continue
		}
		url := firstString(m, "url", "src")
		if url == "" {
			continue
		}
		if first == "" {
			first = url
		}
		kind := strings.ToLower(firstString(m, "type", "purpose", "tag"))
		if strings.Contains(kind, "box") || strings.Contains(kind, "pack") || strings.Contains(kind, "cover") {
			return url
		}
	}
	return first
}

func rawHref(raw RawItem, opts RawOptions) string {
	if href := firstString(raw, linkKeys...); href != "" {
		return href
	}
	if opts.ProductURL != "" {
		if slug := firstString(raw, "slug", "seoName"); slug != "" {
			return fmt.Sprintf(opts.ProductURL, slug)
		}
		if id := firstString(raw, idKeys...); id != "" {
			return fmt.Sprintf(opts.ProductURL, id)
		}
	}
	return opts.StoreRoot
}

func rawPrice(raw RawItem) string {
	if cast.ToBool(raw["isFree"]) {
		return PriceString(nil, "", "Free")
	}

	priceObj, _ := raw["price"].(map[string]any)

	// Display strings win when the source provides one.
	display := firstString(priceObj, "display")
	if display == "" {
		display = firstString(raw, "displayPrice", "priceDisplay")
	}
	if display == "" {
		if s, ok := raw["price"].(string); ok {
			display = strings.TrimSpace(s)
		}
	}
	if display != "" {
		return display
	}

	var amount *float64
	currency := firstString(priceObj, "currency", "currencyCode")
	for _, key := range []string{"discounted", "current", "regular", "amount"} {
		v, ok := priceObj[key]
		if !ok || v == nil {
			continue
		}
		if f, err := cast.ToFloat64E(v); err == nil {
			amount = &f
			break
		}
	}
	return PriceString(amount, currency, "")
}

func rawPlatforms(raw RawItem, fallback string) []string {
	list, ok := raw["platforms"].([]any)
	if !ok || len(list) == 0 {
		if fallback == "" {
			return nil
		}
		return []string{fallback}
	}
	out := make([]string, 0, len(list))
	for _, p := range list {
		if s := cast.ToString(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 && fallback != "" {
		return []string{fallback}
	}
	return out
}

// firstString returns the first present, non-empty value among keys,
// stringified. Numbers are accepted so numeric ids survive.
func firstString(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		if s := strings.TrimSpace(cast.ToString(v)); s != "" {
			return s
		}
	}
	return ""
}
