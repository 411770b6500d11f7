// Package interfaces defines service and storage contracts for finance-web
package interfaces

import (
	"context"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// StorageManager coordinates all storage backends.
type StorageManager interface {
	PortfolioStore() PortfolioStore
	FollowingStore() FollowingStore

	// Lifecycle
	Close() error
}

// PortfolioStore persists portfolios and their transaction lists.
type PortfolioStore interface {
	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)
	SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	ListPortfolios(ctx context.Context) ([]*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) error
}

// FollowingStore persists the user's followed-asset set.
type FollowingStore interface {
	Follow(ctx context.Context, assetID string) error
	Unfollow(ctx context.Context, assetID string) error
	IsFollowing(ctx context.Context, assetID string) (bool, error)
	ListFollowed(ctx context.Context) ([]models.FollowedAsset, error)
}
