// Package storage provides the top-level StorageManager that coordinates
// the BadgerHold-backed stores.
package storage

import (
	"fmt"

	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/storage/badger"
)

// Manager implements interfaces.StorageManager over a single shared
// BadgerHold store.
type Manager struct {
	store     *badger.Store
	portfolio interfaces.PortfolioStore
	following interfaces.FollowingStore
	logger    *common.Logger
}

// NewManager opens the BadgerHold store and wires the per-domain storages.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	logger.Info().
		Str("path", config.Storage.Path).
		Msg("Storage manager initialized")

	return &Manager{
		store:     store,
		portfolio: badger.NewPortfolioStorage(store, logger),
		following: badger.NewFollowingStorage(store, logger),
		logger:    logger,
	}, nil
}

func (m *Manager) PortfolioStore() interfaces.PortfolioStore {
	return m.portfolio
}

func (m *Manager) FollowingStore() interfaces.FollowingStore {
	return m.following
}

func (m *Manager) Close() error {
	return m.store.Close()
}

// Compile-time check
var _ interfaces.StorageManager = (*Manager)(nil)
