package writer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ephellon/gamecatalog/internal/catalog"
	"github.com/ephellon/gamecatalog/internal/testutil"
)

func rec(name, price string) catalog.Record {
	return catalog.NewRecord(catalog.Record{
		Store:     catalog.StoreSteam,
		Name:      name,
		Price:     price,
		Image:     "https://img.example.com/x.png",
		Href:      "https://store.example.com/x",
		Platforms: []string{"PC"},
	})
}

func TestWriteCatalogBuckets(t *testing.T) {
	env := testutil.NewTestEnv(t)

	records := []catalog.Record{
		rec("Tetris", "$9.99"),
		rec("Terraria", "$4.99"),
		rec("2048", "Free"),
		rec("Zelda", "$59.99"),
	}

	require.NoError(t, WriteCatalog(env.RootDir(), catalog.StoreSteam, records))

	env.RequireFileExists("steam/t.json")
	env.RequireFileExists("steam/_.json")
	env.RequireFileExists("steam/z.json")

	// Only non-empty buckets are written.
	files := env.ListFiles("steam")
	assert.Len(t, files, 3)

	var tItems []catalog.OutputItem
	require.NoError(t, json.Unmarshal([]byte(env.ReadFileString("steam/t.json")), &tItems))
	require.Len(t, tItems, 2)
	// Arrival order preserved within the bucket.
	assert.Equal(t, "Tetris", tItems[0].Name)
	assert.Equal(t, "Terraria", tItems[1].Name)

	var catchAll []catalog.OutputItem
	require.NoError(t, json.Unmarshal([]byte(env.ReadFileString("steam/_.json")), &catchAll))
	require.Len(t, catchAll, 1)
	assert.Equal(t, "2048", catchAll[0].Name)
	assert.Equal(t, "Free", catchAll[0].Price)
}

func TestWriteCatalogDropsInternalFields(t *testing.T) {
	env := testutil.NewTestEnv(t)

	r := rec("Hades", "$24.99")
	r.Extra = map[string]any{"secret": true}

	require.NoError(t, WriteCatalog(env.RootDir(), catalog.StoreSteam, []catalog.Record{r}))

	content := env.ReadFileString("steam/h.json")
	assert.NotContains(t, content, `"store"`)
	assert.NotContains(t, content, `"secret"`)
	assert.Contains(t, content, `"name": "Hades"`)
}

func TestWriteCatalogEmptySet(t *testing.T) {
	env := testutil.NewTestEnv(t)

	// Zero records is a valid outcome: nothing written, no error.
	require.NoError(t, WriteCatalog(env.RootDir(), catalog.StorePSN, nil))
	assert.False(t, env.FileExists("psn"))
}

func TestWriteCatalogOverwritesPreviousRun(t *testing.T) {
	env := testutil.NewTestEnv(t)

	require.NoError(t, WriteCatalog(env.RootDir(), catalog.StoreSteam, []catalog.Record{rec("Hades", "$24.99")}))
	require.NoError(t, WriteCatalog(env.RootDir(), catalog.StoreSteam, []catalog.Record{rec("Hades", "$9.99")}))

	assert.Contains(t, env.ReadFileString("steam/h.json"), "$9.99")
}
