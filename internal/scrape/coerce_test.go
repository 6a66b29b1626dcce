package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const coerceBase = "https://store.example.com/list"

func TestCoerceTitleVariants(t *testing.T) {
	assert.Equal(t, "A", Coerce(map[string]any{"title": "A"}, coerceBase)["title"])
	assert.Equal(t, "B", Coerce(map[string]any{"name": "B"}, coerceBase)["title"])
	assert.Equal(t, "C", Coerce(map[string]any{"productTitle": "C"}, coerceBase)["title"])
}

func TestCoerceImageVariants(t *testing.T) {
	item := Coerce(map[string]any{"title": "G", "image": "https://img.example.com/a.png"}, coerceBase)
	assert.Equal(t, "https://img.example.com/a.png", item["imageUrl"])

	imgs := []any{map[string]any{"type": "boxart", "url": "https://img.example.com/b.png"}}
	item = Coerce(map[string]any{"title": "G", "keyImages": imgs}, coerceBase)
	assert.Equal(t, imgs, item["keyImages"])
}

func TestCoerceLinkFallsBackToPageURL(t *testing.T) {
	item := Coerce(map[string]any{"title": "G"}, coerceBase)
	assert.Equal(t, coerceBase, item["productUrl"])

	item = Coerce(map[string]any{"title": "G", "href": "https://store.example.com/g"}, coerceBase)
	assert.Equal(t, "https://store.example.com/g", item["productUrl"])
}

func TestCoercePriceShapes(t *testing.T) {
	priceObj := map[string]any{"regular": 59.99, "currency": "USD"}
	item := Coerce(map[string]any{"title": "G", "price": priceObj}, coerceBase)
	assert.Equal(t, priceObj, item["price"])

	item = Coerce(map[string]any{"title": "G", "price": "$59.99"}, coerceBase)
	assert.Equal(t, "$59.99", item["displayPrice"])

	item = Coerce(map[string]any{"title": "G", "displayPrice": "Free"}, coerceBase)
	assert.Equal(t, "Free", item["displayPrice"])
}

func TestCoerceIDsAndPlatforms(t *testing.T) {
	item := Coerce(map[string]any{
		"title":     "G",
		"productId": "p-1",
		"platforms": []any{"Switch"},
	}, coerceBase)

	assert.Equal(t, "p-1", item["nsuid"])
	assert.Equal(t, []any{"Switch"}, item["platforms"])
}

func TestCoerceNonObject(t *testing.T) {
	assert.Empty(t, Coerce("not an object", coerceBase))
	assert.Empty(t, Coerce(nil, coerceBase))
}
