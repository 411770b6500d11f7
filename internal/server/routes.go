package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/StGrozdanov/finance-web/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Asset catalog
	mux.HandleFunc("/api/assets/types", s.handleAssetTypes)
	mux.HandleFunc("/api/assets/", s.handleAssetGet)
	mux.HandleFunc("/api/assets", s.handleAssetList)

	// Portfolios
	mux.HandleFunc("/api/portfolios/", s.routePortfolios)
	mux.HandleFunc("/api/portfolios", s.handlePortfolioList)

	// Following
	mux.HandleFunc("/api/following/", s.routeFollowing)
	mux.HandleFunc("/api/following", s.handleFollowingList)
}

// routePortfolios dispatches /api/portfolios/{id}/* to the appropriate handler.
func (s *Server) routePortfolios(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/portfolios/")
	if path == "" {
		s.handlePortfolioList(w, r)
		return
	}

	// Split into portfolio ID and sub-path
	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		s.handlePortfolioItem(w, r, id)
	case "summary":
		s.handlePortfolioSummary(w, r, id)
	case "cash":
		s.handlePortfolioCash(w, r, id)
	case "stats":
		s.handlePortfolioStats(w, r, id)
	case "history":
		s.handlePortfolioHistory(w, r, id)
	case "transactions":
		s.handleTransactionAdd(w, r, id)
	default:
		if strings.HasPrefix(subpath, "transactions/") {
			txID := strings.TrimPrefix(subpath, "transactions/")
			s.handleTransactionItem(w, r, id, txID)
			return
		}
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// routeFollowing dispatches /api/following/{assetId} to the appropriate handler.
func (s *Server) routeFollowing(w http.ResponseWriter, r *http.Request) {
	assetID := strings.TrimPrefix(r.URL.Path, "/api/following/")
	if assetID == "" {
		s.handleFollowingList(w, r)
		return
	}
	s.handleFollowingItem(w, r, assetID)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	uptime := time.Since(s.app.StartupTime).Round(time.Second)
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"uptime":  uptime.String(),
	})
}
