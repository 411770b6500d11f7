package server

import (
	"fmt"
	"net/http"
)

func (s *Server) handleFollowingList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		assets, err := s.app.FollowingService.ListFollowed(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error listing followed assets: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"assets": assets,
			"count":  len(assets),
		})

	case http.MethodPost:
		var req struct {
			AssetID string `json:"asset_id"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		if err := s.app.FollowingService.Follow(r.Context(), req.AssetID); err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error following asset: %v", err))
			return
		}
		WriteJSON(w, http.StatusCreated, map[string]string{"status": "following", "asset_id": req.AssetID})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleFollowingItem(w http.ResponseWriter, r *http.Request, assetID string) {
	switch r.Method {
	case http.MethodGet:
		following, err := s.app.FollowingService.IsFollowing(r.Context(), assetID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error checking followed asset: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"asset_id":  assetID,
			"following": following,
		})

	case http.MethodDelete:
		if err := s.app.FollowingService.Unfollow(r.Context(), assetID); err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error unfollowing asset: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "unfollowed", "asset_id": assetID})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}
