package models

import "time"

// Holding is the per-asset accumulator produced by replaying transactions.
// Quantity may go negative transiently during replay; holdings at or below
// zero are excluded from the final summary.
type Holding struct {
	AssetID       string  `json:"asset_id"`
	Quantity      float64 `json:"quantity"`
	TotalInvested float64 `json:"total_invested"` // remaining cost basis in quote currency
	TotalFees     float64 `json:"total_fees"`
}

// PortfolioAsset is a presentation-ready position joined with catalog data.
type PortfolioAsset struct {
	Asset                    Asset   `json:"asset"`
	Quantity                 float64 `json:"quantity"`
	AveragePrice             float64 `json:"average_price"`
	CurrentValue             float64 `json:"current_value"`
	TotalInvested            float64 `json:"total_invested"`
	UnrealizedGain           float64 `json:"unrealized_gain"`
	UnrealizedGainPercentage float64 `json:"unrealized_gain_percentage"`
}

// PortfolioSummary is the top-level valuation of one portfolio.
// AssetsByType always contains all seven asset type keys, possibly empty.
// Cash-type positions are excluded from TotalValue; AvailableCash is added
// exactly once when the summary is computed with cash included.
type PortfolioSummary struct {
	TotalValue                    float64                        `json:"total_value"`
	TotalInvested                 float64                        `json:"total_invested"`
	TotalUnrealizedGain           float64                        `json:"total_unrealized_gain"`
	TotalUnrealizedGainPercentage float64                        `json:"total_unrealized_gain_percentage"`
	Assets                        []PortfolioAsset               `json:"assets"`
	AssetsByType                  map[AssetType][]PortfolioAsset `json:"assets_by_type"`
	AvailableCash                 float64                        `json:"available_cash"`
	IncludesCash                  bool                           `json:"includes_cash"`
}

// CashEntry is one row in the derived cash ledger: either an explicit
// cash-asset transaction passed through, or the implicit cash movement of a
// buy/sell. Derived entries carry IDs of the form "cash-<txid>-in|out".
type CashEntry struct {
	ID      string          `json:"id"`
	AssetID string          `json:"asset_id"` // cash asset the entry settles in
	Type    TransactionType `json:"type"`     // deposit or withdrawal
	Amount  float64         `json:"amount"`
	Date    time.Time       `json:"date"`
	Notes   string          `json:"notes,omitempty"`
	Derived bool            `json:"derived"` // true when translated from a buy/sell
}

// CashBalances holds per-currency cash positions and their combined value in
// the reporting currency (USD). Balances never go negative.
type CashBalances struct {
	USDBalance   float64     `json:"usd_balance"`
	EURBalance   float64     `json:"eur_balance"`
	TotalBalance float64     `json:"total_balance"` // USD + EUR converted at the fixed rate
	Entries      []CashEntry `json:"entries"`
}
