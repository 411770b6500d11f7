package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type followingStorage struct {
	store  *Store
	logger *common.Logger
}

// NewFollowingStorage creates a new FollowingStore backed by BadgerHold.
func NewFollowingStorage(store *Store, logger *common.Logger) *followingStorage {
	return &followingStorage{store: store, logger: logger}
}

func (s *followingStorage) Follow(_ context.Context, assetID string) error {
	record := models.FollowedAsset{
		AssetID:    assetID,
		FollowedAt: time.Now(),
	}
	// Upsert keeps the operation idempotent; re-following refreshes the
	// timestamp.
	if err := s.store.db.Upsert(assetID, &record); err != nil {
		return fmt.Errorf("failed to follow asset '%s': %w", assetID, err)
	}
	s.logger.Debug().Str("asset_id", assetID).Msg("Asset followed")
	return nil
}

func (s *followingStorage) Unfollow(_ context.Context, assetID string) error {
	err := s.store.db.Delete(assetID, models.FollowedAsset{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to unfollow asset '%s': %w", assetID, err)
	}
	s.logger.Debug().Str("asset_id", assetID).Msg("Asset unfollowed")
	return nil
}

func (s *followingStorage) IsFollowing(_ context.Context, assetID string) (bool, error) {
	var record models.FollowedAsset
	err := s.store.db.Get(assetID, &record)
	if err == badgerhold.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check following for '%s': %w", assetID, err)
	}
	return true, nil
}

func (s *followingStorage) ListFollowed(_ context.Context) ([]models.FollowedAsset, error) {
	var records []models.FollowedAsset
	if err := s.store.db.Find(&records, nil); err != nil {
		return nil, fmt.Errorf("failed to list followed assets: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].FollowedAt.Before(records[j].FollowedAt)
	})
	return records, nil
}
