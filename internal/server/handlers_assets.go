package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// handleAssetList handles GET /api/assets with optional type and q filters.
func (s *Server) handleAssetList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	assetType := models.AssetType(r.URL.Query().Get("type"))
	if assetType != "" && !models.ValidAssetType(assetType) {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Unknown asset type: %s", assetType))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid limit: %s", raw))
			return
		}
		limit = n
	}

	query := r.URL.Query().Get("q")
	var assets []models.Asset
	if query == "" && assetType != "" {
		assets = s.app.Catalog.Popular(assetType, limit)
	} else {
		assets = s.app.Catalog.Search(query, assetType)
		if limit > 0 && len(assets) > limit {
			assets = assets[:limit]
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"assets": assets,
		"count":  len(assets),
	})
}

// handleAssetGet handles GET /api/assets/{id}.
func (s *Server) handleAssetGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/assets/")
	if id == "" {
		s.handleAssetList(w, r)
		return
	}

	asset, ok := s.app.Catalog.Lookup(id)
	if !ok {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Asset not found: %s", id))
		return
	}

	WriteJSON(w, http.StatusOK, asset)
}

// handleAssetTypes handles GET /api/assets/types.
func (s *Server) handleAssetTypes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"types": models.AssetTypeDescriptions(),
	})
}
