// Package portfolio manages portfolios, their transactions, and the views
// derived from them.
package portfolio

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/StGrozdanov/finance-web/internal/catalog"
	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/models"
	"github.com/StGrozdanov/finance-web/internal/services/valuation"
)

// Compile-time interface check
var _ interfaces.PortfolioService = (*Service)(nil)

// Service implements PortfolioService.
type Service struct {
	storage interfaces.StorageManager
	catalog *catalog.Catalog
	logger  *common.Logger
}

// NewService creates a new portfolio service.
func NewService(storage interfaces.StorageManager, cat *catalog.Catalog, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		catalog: cat,
		logger:  logger,
	}
}

// EnsureDemoPortfolio seeds the demo portfolio when no portfolios exist yet.
// Called once at application startup.
func (s *Service) EnsureDemoPortfolio(ctx context.Context) error {
	existing, err := s.storage.PortfolioStore().ListPortfolios(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing portfolios: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	demo := DemoPortfolio()
	if err := s.storage.PortfolioStore().SavePortfolio(ctx, demo); err != nil {
		return fmt.Errorf("failed to seed demo portfolio: %w", err)
	}
	s.logger.Info().
		Str("id", demo.ID).
		Int("transactions", len(demo.Transactions)).
		Msg("Demo portfolio seeded")
	return nil
}

// CreatePortfolio creates a portfolio. The first user-created portfolio
// replaces the seeded demo portfolio.
func (s *Service) CreatePortfolio(ctx context.Context, name string, transactions []models.Transaction) (*models.Portfolio, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("portfolio name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("portfolio name exceeds 100 characters")
	}

	txs := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if err := s.validateTransaction(&tx); err != nil {
			return nil, fmt.Errorf("invalid transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	// The demo portfolio only lives until the user creates a real one.
	existing, err := s.storage.PortfolioStore().ListPortfolios(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	onlyDemo := len(existing) > 0
	for _, p := range existing {
		if !p.IsDemo {
			onlyDemo = false
			break
		}
	}
	if onlyDemo {
		for _, p := range existing {
			if err := s.storage.PortfolioStore().DeletePortfolio(ctx, p.ID); err != nil {
				return nil, fmt.Errorf("failed to remove demo portfolio: %w", err)
			}
		}
		s.logger.Info().Msg("Demo portfolio replaced by first user portfolio")
	}

	portfolio := &models.Portfolio{
		ID:           uuid.NewString(),
		Name:         name,
		Transactions: txs,
	}
	if err := s.storage.PortfolioStore().SavePortfolio(ctx, portfolio); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", portfolio.ID).
		Str("name", portfolio.Name).
		Int("transactions", len(portfolio.Transactions)).
		Msg("Portfolio created")
	return portfolio, nil
}

// GetPortfolio retrieves a portfolio by ID.
func (s *Service) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	return s.storage.PortfolioStore().GetPortfolio(ctx, id)
}

// ListPortfolios returns all portfolios, oldest first.
func (s *Service) ListPortfolios(ctx context.Context) ([]*models.Portfolio, error) {
	return s.storage.PortfolioStore().ListPortfolios(ctx)
}

// DeletePortfolio removes a portfolio by ID.
func (s *Service) DeletePortfolio(ctx context.Context, id string) error {
	if _, err := s.storage.PortfolioStore().GetPortfolio(ctx, id); err != nil {
		return err
	}
	return s.storage.PortfolioStore().DeletePortfolio(ctx, id)
}

// AddTransaction validates and appends a transaction. When opts.HandleCash
// is set and the transaction is a priced trade of a non-cash asset, a
// paired USD cash movement is appended too so explicit cash balances track
// the trade.
func (s *Service) AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction, opts interfaces.TransactionOptions) (*models.Portfolio, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	if err := s.validateTransaction(&tx); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	portfolio.Transactions = append(portfolio.Transactions, tx)

	if cashTx, ok := s.pairedCashTransaction(tx, opts); ok {
		portfolio.Transactions = append(portfolio.Transactions, cashTx)
	}

	if err := s.storage.PortfolioStore().SavePortfolio(ctx, portfolio); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("portfolio", portfolioID).
		Str("tx", tx.ID).
		Str("type", string(tx.Type)).
		Str("asset", tx.AssetID).
		Msg("Transaction added")
	return portfolio, nil
}

// pairedCashTransaction builds the USD cash movement mirroring a priced
// trade: buys withdraw cost plus fee, sells deposit proceeds. Transfers and
// trades of cash assets themselves never pair.
func (s *Service) pairedCashTransaction(tx models.Transaction, opts interfaces.TransactionOptions) (models.Transaction, bool) {
	if !opts.HandleCash || tx.Type == models.TxTransfer || tx.Price <= 0 {
		return models.Transaction{}, false
	}
	asset, ok := s.catalog.Lookup(tx.AssetID)
	if !ok || asset.IsCash() {
		return models.Transaction{}, false
	}

	cashType := models.TxDeposit
	verb := "Proceeds from"
	if tx.Type == models.TxBuy {
		cashType = models.TxWithdrawal
		verb = "Payment for"
	}

	return models.Transaction{
		ID:      "cash-" + uuid.NewString(),
		AssetID: "usd",
		Type:    cashType,
		Amount:  tx.Amount*tx.Price + tx.Fee,
		Date:    tx.Date,
		Notes:   fmt.Sprintf("%s %s of %s", verb, tx.Type, asset.Symbol),
	}, true
}

// UpdateTransaction replaces a transaction by ID.
func (s *Service) UpdateTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (*models.Portfolio, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	idx := portfolio.FindTransaction(tx.ID)
	if idx < 0 {
		return nil, fmt.Errorf("transaction '%s' not found in portfolio '%s'", tx.ID, portfolioID)
	}
	if err := s.checkTransactionFields(&tx); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	portfolio.Transactions[idx] = tx
	if err := s.storage.PortfolioStore().SavePortfolio(ctx, portfolio); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("portfolio", portfolioID).
		Str("tx", tx.ID).
		Msg("Transaction updated")
	return portfolio, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Service) DeleteTransaction(ctx context.Context, portfolioID, txID string) (*models.Portfolio, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	idx := portfolio.FindTransaction(txID)
	if idx < 0 {
		return nil, fmt.Errorf("transaction '%s' not found in portfolio '%s'", txID, portfolioID)
	}

	portfolio.Transactions = append(portfolio.Transactions[:idx], portfolio.Transactions[idx+1:]...)
	if err := s.storage.PortfolioStore().SavePortfolio(ctx, portfolio); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("portfolio", portfolioID).
		Str("tx", txID).
		Msg("Transaction deleted")
	return portfolio, nil
}

// Summarize computes the full valuation summary for a portfolio.
func (s *Service) Summarize(ctx context.Context, portfolioID string, includeCash bool) (*models.PortfolioSummary, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	summary := valuation.ComputeSummary(portfolio.Transactions, s.catalog.Lookup, includeCash)
	return &summary, nil
}

// CashBalances derives per-currency cash balances and the cash ledger.
func (s *Service) CashBalances(ctx context.Context, portfolioID string) (*models.CashBalances, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	balances := valuation.DeriveCashBalances(portfolio.Transactions, s.catalog.Lookup)
	return &balances, nil
}

// validateTransaction checks a new transaction against the catalog and the
// per-type field rules, filling in an ID when absent.
func (s *Service) validateTransaction(tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	return s.checkTransactionFields(tx)
}

func (s *Service) checkTransactionFields(tx *models.Transaction) error {
	if !models.ValidTransactionType(tx.Type) {
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}
	if _, ok := s.catalog.Lookup(tx.AssetID); !ok {
		return fmt.Errorf("unknown asset %q", tx.AssetID)
	}
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return fmt.Errorf("amount must be finite")
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if math.IsNaN(tx.Price) || math.IsInf(tx.Price, 0) || tx.Price < 0 {
		return fmt.Errorf("price must be finite and non-negative")
	}
	if math.IsNaN(tx.Fee) || math.IsInf(tx.Fee, 0) || tx.Fee < 0 {
		return fmt.Errorf("fee must be finite and non-negative")
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	switch tx.Type {
	case models.TxBuy, models.TxSell:
		if tx.Price <= 0 {
			return fmt.Errorf("%s requires a positive price", tx.Type)
		}
	case models.TxTransfer:
		if !models.ValidTransferSource(tx.From) {
			return fmt.Errorf("transfer requires a valid source, got %q", tx.From)
		}
	}
	return nil
}
