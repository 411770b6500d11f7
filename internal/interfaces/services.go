package interfaces

import (
	"context"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// PortfolioService manages portfolios, their transactions, and derived views.
type PortfolioService interface {
	// CreatePortfolio creates a portfolio. The first user-created portfolio
	// replaces the seeded demo portfolio.
	CreatePortfolio(ctx context.Context, name string, transactions []models.Transaction) (*models.Portfolio, error)

	// GetPortfolio retrieves a portfolio by ID.
	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)

	// ListPortfolios returns all portfolios.
	ListPortfolios(ctx context.Context) ([]*models.Portfolio, error)

	// DeletePortfolio removes a portfolio by ID.
	DeletePortfolio(ctx context.Context, id string) error

	// AddTransaction validates and appends a transaction. Options control
	// derived cash handling.
	AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction, opts TransactionOptions) (*models.Portfolio, error)

	// UpdateTransaction replaces a transaction by ID.
	UpdateTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (*models.Portfolio, error)

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, portfolioID, txID string) (*models.Portfolio, error)

	// Summarize computes the full valuation summary for a portfolio.
	Summarize(ctx context.Context, portfolioID string, includeCash bool) (*models.PortfolioSummary, error)

	// CashBalances derives per-currency cash balances and the cash ledger.
	CashBalances(ctx context.Context, portfolioID string) (*models.CashBalances, error)

	// Stats computes dashboard statistics (movers, performers, daily change).
	Stats(ctx context.Context, portfolioID string, includeCash bool) (*models.PortfolioStats, error)

	// ValueHistory produces the value time series for a timeframe.
	ValueHistory(ctx context.Context, portfolioID string, timeframe models.TimeFrame, includeCash bool) ([]models.ValuePoint, error)

	// RenderHistoryChart renders the value history as a PNG chart.
	RenderHistoryChart(ctx context.Context, portfolioID string, timeframe models.TimeFrame, includeCash bool) ([]byte, error)
}

// TransactionOptions controls transaction creation side effects.
type TransactionOptions struct {
	// HandleCash appends a paired USD cash movement for priced buy/sell
	// transactions so explicit cash balances track the trade.
	HandleCash bool
}

// FollowingService manages the user's followed-asset set.
type FollowingService interface {
	Follow(ctx context.Context, assetID string) error
	Unfollow(ctx context.Context, assetID string) error
	IsFollowing(ctx context.Context, assetID string) (bool, error)
	ListFollowed(ctx context.Context) ([]models.Asset, error)
}
