// Package catalog provides the static asset catalog: immutable reference
// data the valuation core resolves asset IDs against.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// Catalog is an immutable, id-indexed collection of assets.
type Catalog struct {
	assets []models.Asset
	byID   map[string]models.Asset
}

// New builds a catalog from the given assets. Later duplicates of an ID
// override earlier ones.
func New(assets []models.Asset) *Catalog {
	byID := make(map[string]models.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	return &Catalog{assets: assets, byID: byID}
}

// Default returns a catalog seeded with the built-in asset list.
func Default() *Catalog {
	return New(seedAssets())
}

// LoadFile reads a catalog from a JSON file containing an array of assets.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var assets []models.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no assets", path)
	}
	for _, a := range assets {
		if a.ID == "" {
			return nil, fmt.Errorf("catalog file %s contains an asset with no id", path)
		}
		if !models.ValidAssetType(a.Type) {
			return nil, fmt.Errorf("catalog file %s: asset %s has unknown type %q", path, a.ID, a.Type)
		}
	}

	return New(assets), nil
}

// Lookup resolves an asset by ID.
func (c *Catalog) Lookup(id string) (models.Asset, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns every asset in catalog order.
func (c *Catalog) All() []models.Asset {
	out := make([]models.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Len returns the number of assets in the catalog.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// ByType returns all assets of the given type in catalog order.
func (c *Catalog) ByType(t models.AssetType) []models.Asset {
	var out []models.Asset
	for _, a := range c.assets {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Popular returns up to limit assets of the given type, in catalog order.
func (c *Catalog) Popular(t models.AssetType, limit int) []models.Asset {
	assets := c.ByType(t)
	if limit > 0 && len(assets) > limit {
		assets = assets[:limit]
	}
	return assets
}

// Search returns assets whose symbol or name contains the query,
// case-insensitively. An empty query matches everything. When t is non-empty
// the search is restricted to that type.
func (c *Catalog) Search(query string, t models.AssetType) []models.Asset {
	pool := c.assets
	if t != "" {
		pool = c.ByType(t)
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		out := make([]models.Asset, len(pool))
		copy(out, pool)
		return out
	}

	var out []models.Asset
	for _, a := range pool {
		if strings.Contains(strings.ToLower(a.Symbol), query) ||
			strings.Contains(strings.ToLower(a.Name), query) {
			out = append(out, a)
		}
	}
	return out
}
