package models

import "time"

// Portfolio represents a user portfolio with its full transaction history.
// Derived values (summaries, cash balances, stats) are never persisted —
// they are recomputed from Transactions on every read.
type Portfolio struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	IsDemo       bool          `json:"is_demo"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// FindTransaction returns the index of the transaction with the given ID,
// or -1 when not present.
func (p *Portfolio) FindTransaction(txID string) int {
	for i := range p.Transactions {
		if p.Transactions[i].ID == txID {
			return i
		}
	}
	return -1
}

// FollowedAsset records that the user follows a catalog asset.
type FollowedAsset struct {
	AssetID    string    `json:"asset_id" badgerhold:"key"`
	FollowedAt time.Time `json:"followed_at"`
}
