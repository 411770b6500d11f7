package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/models"
)

// statusForServiceError maps service errors onto HTTP status codes. Storage
// lookups report missing records with a "not found" message.
func statusForServiceError(err error) int {
	if strings.Contains(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *Server) handlePortfolioList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		portfolios, err := s.app.PortfolioService.ListPortfolios(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error listing portfolios: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"portfolios": portfolios,
			"count":      len(portfolios),
		})

	case http.MethodPost:
		var req struct {
			Name         string               `json:"name"`
			Transactions []models.Transaction `json:"transactions"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}

		portfolio, err := s.app.PortfolioService.CreatePortfolio(r.Context(), req.Name, req.Transactions)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error creating portfolio: %v", err))
			return
		}
		WriteJSON(w, http.StatusCreated, portfolio)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handlePortfolioItem(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		portfolio, err := s.app.PortfolioService.GetPortfolio(r.Context(), id)
		if err != nil {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Portfolio not found: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, portfolio)

	case http.MethodDelete:
		if err := s.app.PortfolioService.DeletePortfolio(r.Context(), id); err != nil {
			WriteError(w, statusForServiceError(err), fmt.Sprintf("Error deleting portfolio: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}

func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	includeCash := queryBool(r, "include_cash", true)
	summary, err := s.app.PortfolioService.Summarize(r.Context(), id, includeCash)
	if err != nil {
		WriteError(w, statusForServiceError(err), fmt.Sprintf("Error computing summary: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

func (s *Server) handlePortfolioCash(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	balances, err := s.app.PortfolioService.CashBalances(r.Context(), id)
	if err != nil {
		WriteError(w, statusForServiceError(err), fmt.Sprintf("Error deriving cash balances: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, balances)
}

func (s *Server) handlePortfolioStats(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	includeCash := queryBool(r, "include_cash", true)
	stats, err := s.app.PortfolioService.Stats(r.Context(), id, includeCash)
	if err != nil {
		WriteError(w, statusForServiceError(err), fmt.Sprintf("Error computing stats: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}

// handlePortfolioHistory serves the value time series, as JSON by default or
// as a rendered PNG chart with format=png.
func (s *Server) handlePortfolioHistory(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	timeframe := models.TimeFrame(r.URL.Query().Get("timeframe"))
	if timeframe == "" {
		timeframe = models.TimeFrame1M
	}
	includeCash := queryBool(r, "include_cash", true)

	if r.URL.Query().Get("format") == "png" {
		png, err := s.app.PortfolioService.RenderHistoryChart(r.Context(), id, timeframe, includeCash)
		if err != nil {
			WriteError(w, statusForServiceError(err), fmt.Sprintf("Error rendering chart: %v", err))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
		return
	}

	points, err := s.app.PortfolioService.ValueHistory(r.Context(), id, timeframe, includeCash)
	if err != nil {
		WriteError(w, statusForServiceError(err), fmt.Sprintf("Error computing history: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"timeframe": timeframe,
		"points":    points,
	})
}

func (s *Server) handleTransactionAdd(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		models.Transaction
		HandleCash bool `json:"handle_cash"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	portfolio, err := s.app.PortfolioService.AddTransaction(r.Context(), id, req.Transaction,
		interfaces.TransactionOptions{HandleCash: req.HandleCash})
	if err != nil {
		WriteError(w, statusForServiceError(err), fmt.Sprintf("Error adding transaction: %v", err))
		return
	}

	WriteJSON(w, http.StatusCreated, portfolio)
}

func (s *Server) handleTransactionItem(w http.ResponseWriter, r *http.Request, id, txID string) {
	switch r.Method {
	case http.MethodPut:
		var tx models.Transaction
		if !DecodeJSON(w, r, &tx) {
			return
		}
		tx.ID = txID

		portfolio, err := s.app.PortfolioService.UpdateTransaction(r.Context(), id, tx)
		if err != nil {
			WriteError(w, statusForServiceError(err), fmt.Sprintf("Error updating transaction: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, portfolio)

	case http.MethodDelete:
		portfolio, err := s.app.PortfolioService.DeleteTransaction(r.Context(), id, txID)
		if err != nil {
			WriteError(w, statusForServiceError(err), fmt.Sprintf("Error deleting transaction: %v", err))
			return
		}
		WriteJSON(w, http.StatusOK, portfolio)

	default:
		RequireMethod(w, r, http.MethodPut, http.MethodDelete)
	}
}
