package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordPriceNeverEmpty(t *testing.T) {
	assert.Equal(t, "Unavailable", NewRecord(Record{Name: "X"}).Price)
	assert.Equal(t, "Unavailable", NewRecord(Record{Name: "X", Price: "   "}).Price)
	assert.Equal(t, "$9.99", NewRecord(Record{Name: "X", Price: "$9.99"}).Price)
}

func TestNewRecordPlatformDedup(t *testing.T) {
	rec := NewRecord(Record{
		Name:      "X",
		Platforms: []string{"PS5", "ps5", "PS4", "  ", "PS5 ", "Switch"},
	})
	// Case-insensitive dedup, first-occurrence order preserved.
	assert.Equal(t, []string{"PS5", "PS4", "Switch"}, rec.Platforms)
}

func TestNewRecordRating(t *testing.T) {
	assert.Equal(t, "teen", NewRecord(Record{Name: "X", Rating: "Teen"}).Rating)
	assert.Equal(t, "mature 17+", NewRecord(Record{Name: "X", Rating: "MATURE 17+"}).Rating)
	// Out-of-vocabulary ratings are dropped rather than passed through.
	assert.Equal(t, "", NewRecord(Record{Name: "X", Rating: "PEGI 18"}).Rating)
	assert.Equal(t, "", NewRecord(Record{Name: "X"}).Rating)
}

func TestStoreValid(t *testing.T) {
	for _, s := range Stores {
		assert.True(t, s.Valid())
	}
	assert.False(t, Store("gog").Valid())
	assert.False(t, Store("").Valid())
}

func TestAdapterConfigLocalePath(t *testing.T) {
	assert.Equal(t, "en-us", AdapterConfig{Locale: "en-US"}.LocalePath())
	assert.Equal(t, "fr-ca", AdapterConfig{Locale: "fr_CA"}.LocalePath())
}

func TestOutputItemProjection(t *testing.T) {
	rec := NewRecord(Record{
		Store:     StoreNintendo,
		Name:      "Super Game",
		Price:     "$29.99",
		Image:     "https://img.example.com/a.png",
		Href:      "https://store.example.com/a",
		UUID:      "70010000001",
		Platforms: []string{"Switch"},
		Kind:      "game",
		Extra:     map[string]any{"internal": true},
	})

	item := rec.OutputItem()
	assert.Equal(t, "Super Game", item.Name)
	assert.Equal(t, "game", item.Kind)
	assert.Equal(t, "$29.99", item.Price)
	assert.Equal(t, "70010000001", item.UUID)
	assert.Equal(t, []string{"Switch"}, item.Platforms)
}
