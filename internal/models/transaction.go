package models

import "time"

// TransactionType categorizes portfolio transactions.
type TransactionType string

const (
	TxBuy        TransactionType = "buy"
	TxSell       TransactionType = "sell"
	TxTransfer   TransactionType = "transfer"
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
)

// validTransactionTypes lists all accepted transaction types.
var validTransactionTypes = map[TransactionType]bool{
	TxBuy:        true,
	TxSell:       true,
	TxTransfer:   true,
	TxDeposit:    true,
	TxWithdrawal: true,
}

// ValidTransactionType returns true if t is a valid transaction type.
func ValidTransactionType(t TransactionType) bool {
	return validTransactionTypes[t]
}

// TransferSource identifies where a transfer originated or is headed.
type TransferSource string

const (
	TransferExchange         TransferSource = "exchange"
	TransferMyWallet         TransferSource = "my_wallet"
	TransferOtherWallet      TransferSource = "other_wallet"
	TransferAirdrop          TransferSource = "airdrop"
	TransferMining           TransferSource = "mining"
	TransferFork             TransferSource = "fork"
	TransferDividendsStaking TransferSource = "dividends_staking"
	TransferOtherUnknown     TransferSource = "other_unknown"
)

// validTransferSources lists all accepted transfer sources.
var validTransferSources = map[TransferSource]bool{
	TransferExchange:         true,
	TransferMyWallet:         true,
	TransferOtherWallet:      true,
	TransferAirdrop:          true,
	TransferMining:           true,
	TransferFork:             true,
	TransferDividendsStaking: true,
	TransferOtherUnknown:     true,
}

// ValidTransferSource returns true if s is a valid transfer source.
func ValidTransferSource(s TransferSource) bool {
	return validTransferSources[s]
}

// IsExternalInflow reports whether a transfer from this source brings units
// into the portfolio from outside. Transfers from the user's own wallet are
// treated as already counted.
func (s TransferSource) IsExternalInflow() bool {
	return s == TransferExchange || s == TransferOtherWallet
}

// Transaction represents a single recorded event against a portfolio.
// Price is required for buy/sell and unused otherwise.
// From/To apply to transfers only.
type Transaction struct {
	ID      string          `json:"id"`
	AssetID string          `json:"asset_id"`
	Type    TransactionType `json:"type"`
	Amount  float64         `json:"amount"`          // quantity of asset units moved
	Price   float64         `json:"price,omitempty"` // unit price at execution time
	Fee     float64         `json:"fee,omitempty"`
	Date    time.Time       `json:"date"`
	Notes   string          `json:"notes,omitempty"`
	From    TransferSource  `json:"from,omitempty"`
	To      TransferSource  `json:"to,omitempty"`
}
