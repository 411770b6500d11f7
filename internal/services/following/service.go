// Package following manages the user's followed-asset set.
package following

import (
	"context"
	"fmt"

	"github.com/StGrozdanov/finance-web/internal/catalog"
	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/models"
)

// Compile-time interface check
var _ interfaces.FollowingService = (*Service)(nil)

// Service implements FollowingService. Followed IDs are validated against
// the catalog on write; stale IDs already in the store (after a catalog
// change) are dropped on read.
type Service struct {
	storage interfaces.StorageManager
	catalog *catalog.Catalog
	logger  *common.Logger
}

// NewService creates a new following service.
func NewService(storage interfaces.StorageManager, cat *catalog.Catalog, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		catalog: cat,
		logger:  logger,
	}
}

// Follow marks an asset as followed. Re-following is a no-op.
func (s *Service) Follow(ctx context.Context, assetID string) error {
	if _, ok := s.catalog.Lookup(assetID); !ok {
		return fmt.Errorf("unknown asset %q", assetID)
	}
	return s.storage.FollowingStore().Follow(ctx, assetID)
}

// Unfollow removes an asset from the followed set.
func (s *Service) Unfollow(ctx context.Context, assetID string) error {
	return s.storage.FollowingStore().Unfollow(ctx, assetID)
}

// IsFollowing reports whether the asset is currently followed.
func (s *Service) IsFollowing(ctx context.Context, assetID string) (bool, error) {
	return s.storage.FollowingStore().IsFollowing(ctx, assetID)
}

// ListFollowed returns the followed assets joined with catalog data, in
// follow order.
func (s *Service) ListFollowed(ctx context.Context) ([]models.Asset, error) {
	records, err := s.storage.FollowingStore().ListFollowed(ctx)
	if err != nil {
		return nil, err
	}

	assets := make([]models.Asset, 0, len(records))
	for _, r := range records {
		asset, ok := s.catalog.Lookup(r.AssetID)
		if !ok {
			s.logger.Warn().Str("asset_id", r.AssetID).Msg("Followed asset missing from catalog, skipping")
			continue
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
