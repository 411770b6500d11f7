package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StGrozdanov/finance-web/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 31, c.Len())

	btc, ok := c.Lookup("btc")
	require.True(t, ok)
	assert.Equal(t, "BTC", btc.Symbol)
	assert.Equal(t, models.AssetTypeCrypto, btc.Type)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)

	// Every seeded asset has a valid type, and both cash assets exist.
	for _, a := range c.All() {
		assert.True(t, models.ValidAssetType(a.Type), "asset %s has invalid type", a.ID)
	}
	eur, ok := c.Lookup("eur")
	require.True(t, ok)
	assert.True(t, eur.IsCash())
	assert.InDelta(t, 1.08, eur.Price, 1e-9)
}

func TestByType(t *testing.T) {
	c := Default()

	stocks := c.ByType(models.AssetTypeStocks)
	assert.Len(t, stocks, 9)
	for _, a := range stocks {
		assert.Equal(t, models.AssetTypeStocks, a.Type)
	}

	assert.Len(t, c.ByType(models.AssetTypeCash), 2)
}

func TestPopular(t *testing.T) {
	c := Default()

	top := c.Popular(models.AssetTypeCrypto, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "btc", top[0].ID)

	// Limit larger than the bucket returns everything.
	assert.Len(t, c.Popular(models.AssetTypeIndices, 100), 3)
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		query   string
		typ     models.AssetType
		wantIDs []string
	}{
		{name: "by symbol", query: "btc", wantIDs: []string{"btc"}},
		{name: "by name fragment", query: "vanguard", wantIDs: []string{"vti", "voo"}},
		{name: "case insensitive", query: "TESLA", wantIDs: []string{"tsla"}},
		{name: "type restricted", query: "gold", typ: models.AssetTypeCommodities, wantIDs: []string{"gold"}},
		{name: "no match", query: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := c.Search(tt.query, tt.typ)
			var ids []string
			for _, a := range results {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	// Empty query returns the full pool.
	assert.Len(t, c.Search("", ""), c.Len())
	assert.Len(t, c.Search("  ", models.AssetTypeNFTs), 3)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		data := `[{"id":"abc","symbol":"ABC","name":"Alphabet Soup","type":"stocks","price":10,"change_24h":1.5}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		c, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())

		a, ok := c.Lookup("abc")
		require.True(t, ok)
		assert.InDelta(t, 10.0, a.Price, 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid type", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		data := `[{"id":"abc","symbol":"ABC","name":"A","type":"bonds","price":10}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "unknown type")
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "no assets")
	})
}
