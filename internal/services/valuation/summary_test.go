package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StGrozdanov/finance-web/internal/models"
)

var testAssets = map[string]models.Asset{
	"btc":  {ID: "btc", Symbol: "BTC", Name: "Bitcoin", Type: models.AssetTypeCrypto, Price: 150, Change24h: 2.5},
	"eth":  {ID: "eth", Symbol: "ETH", Name: "Ethereum", Type: models.AssetTypeCrypto, Price: 2000, Change24h: -1.0},
	"aapl": {ID: "aapl", Symbol: "AAPL", Name: "Apple Inc.", Type: models.AssetTypeStocks, Price: 200, Change24h: 1.0},
	"usd":  {ID: "usd", Symbol: "USD", Name: "US Dollar", Type: models.AssetTypeCash, Price: 1.0},
	"eur":  {ID: "eur", Symbol: "EUR", Name: "Euro", Type: models.AssetTypeCash, Price: 1.08},
}

func testLookup(id string) (models.Asset, bool) {
	a, ok := testAssets[id]
	return a, ok
}

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func findAsset(t *testing.T, summary models.PortfolioSummary, assetID string) models.PortfolioAsset {
	t.Helper()
	for _, position := range summary.Assets {
		if position.Asset.ID == assetID {
			return position
		}
	}
	t.Fatalf("asset %s not in summary", assetID)
	return models.PortfolioAsset{}
}

func TestComputeSummaryAccumulation(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		assetID      string
		wantQty      float64
		wantInvested float64
		wantAvg      float64
	}{
		{
			name: "single buy",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Fee: 1, Date: day(1)},
			},
			assetID:      "btc",
			wantQty:      1,
			wantInvested: 100,
			wantAvg:      100,
		},
		{
			name: "weighted average across buys",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(1)},
				{ID: "t2", AssetID: "btc", Type: models.TxBuy, Amount: 3, Price: 200, Date: day(2)},
			},
			assetID:      "btc",
			wantQty:      4,
			wantInvested: 700,
			wantAvg:      175, // (1*100 + 3*200) / 4
		},
		{
			name: "sell reduces basis proportionally",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
				{ID: "t2", AssetID: "btc", Type: models.TxSell, Amount: 1, Price: 120, Date: day(2)},
			},
			assetID:      "btc",
			wantQty:      1,
			wantInvested: 100, // half of 200 removed, average cost preserved
			wantAvg:      100,
		},
		{
			name: "external transfer uses current price as basis",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "btc", Type: models.TxTransfer, Amount: 2, From: models.TransferExchange, Date: day(1)},
			},
			assetID:      "btc",
			wantQty:      2,
			wantInvested: 300, // 2 * catalog price 150
			wantAvg:      150,
		},
		{
			name: "internal transfer does not change quantity",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(1)},
				{ID: "t2", AssetID: "btc", Type: models.TxTransfer, Amount: 5, From: models.TransferMyWallet, Date: day(2)},
			},
			assetID:      "btc",
			wantQty:      1,
			wantInvested: 100,
			wantAvg:      100,
		},
		{
			name: "deposit and withdrawal move quantity only",
			transactions: []models.Transaction{
				{ID: "t1", AssetID: "usd", Type: models.TxDeposit, Amount: 500, Date: day(1)},
				{ID: "t2", AssetID: "usd", Type: models.TxWithdrawal, Amount: 200, Date: day(2)},
			},
			assetID:      "usd",
			wantQty:      300,
			wantInvested: 0,
			wantAvg:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeSummary(tt.transactions, testLookup, true)
			position := findAsset(t, summary, tt.assetID)
			assert.InDelta(t, tt.wantQty, position.Quantity, 1e-9)
			assert.InDelta(t, tt.wantInvested, position.TotalInvested, 1e-9)
			assert.InDelta(t, tt.wantAvg, position.AveragePrice, 1e-9)
		})
	}
}

func TestComputeSummaryConcreteScenario(t *testing.T) {
	// Buy 1 unit at 100 with fee 1; catalog price is 150.
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Fee: 1, Date: day(1)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	require.Len(t, summary.Assets, 1)

	position := summary.Assets[0]
	assert.InDelta(t, 1.0, position.Quantity, 1e-9)
	assert.InDelta(t, 100.0, position.TotalInvested, 1e-9)
	assert.InDelta(t, 100.0, position.AveragePrice, 1e-9)
	assert.InDelta(t, 150.0, position.CurrentValue, 1e-9)
	assert.InDelta(t, 50.0, position.UnrealizedGain, 1e-9)
	assert.InDelta(t, 50.0, position.UnrealizedGainPercentage, 1e-9)
}

func TestComputeSummaryFullySoldExcluded(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
		{ID: "t2", AssetID: "btc", Type: models.TxSell, Amount: 2, Price: 120, Date: day(2)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	assert.Empty(t, summary.Assets)
	assert.Zero(t, summary.TotalValue)
	assert.Zero(t, summary.TotalInvested)
}

func TestComputeSummarySellGuards(t *testing.T) {
	t.Run("sell with nothing held leaves basis unchanged", func(t *testing.T) {
		transactions := []models.Transaction{
			{ID: "t1", AssetID: "btc", Type: models.TxSell, Amount: 1, Price: 120, Date: day(1)},
			{ID: "t2", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(2)},
		}

		// Must not panic, and the later buy establishes the position.
		summary := ComputeSummary(transactions, testLookup, false)
		position := findAsset(t, summary, "btc")
		assert.InDelta(t, 1.0, position.Quantity, 1e-9)
		assert.InDelta(t, 200.0, position.TotalInvested, 1e-9)
	})

	t.Run("oversell clamps basis at zero", func(t *testing.T) {
		transactions := []models.Transaction{
			{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(1)},
			{ID: "t2", AssetID: "btc", Type: models.TxSell, Amount: 3, Price: 120, Date: day(2)},
			{ID: "t3", AssetID: "btc", Type: models.TxBuy, Amount: 3, Price: 100, Date: day(3)},
		}

		summary := ComputeSummary(transactions, testLookup, false)
		position := findAsset(t, summary, "btc")
		assert.InDelta(t, 1.0, position.Quantity, 1e-9)
		// Basis from the oversold position was clamped to zero; only the
		// final buy's cost remains.
		assert.InDelta(t, 300.0, position.TotalInvested, 1e-9)
	})
}

func TestComputeSummaryReplaysInDateOrder(t *testing.T) {
	// Stored with the sell first; date order must still apply the buy before
	// the sell so the proportional basis reduction is correct.
	transactions := []models.Transaction{
		{ID: "t2", AssetID: "btc", Type: models.TxSell, Amount: 1, Price: 120, Date: day(5)},
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	position := findAsset(t, summary, "btc")
	assert.InDelta(t, 1.0, position.Quantity, 1e-9)
	assert.InDelta(t, 100.0, position.TotalInvested, 1e-9)
}

func TestComputeSummaryTypeBucketsAlwaysPresent(t *testing.T) {
	summary := ComputeSummary(nil, testLookup, true)

	require.Len(t, summary.AssetsByType, 7)
	for _, assetType := range models.AllAssetTypes() {
		bucket, ok := summary.AssetsByType[assetType]
		assert.True(t, ok, "missing bucket for %s", assetType)
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
	}
}

func TestComputeSummaryUnknownAssetSkipped(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "gone", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(1)},
		{ID: "t2", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(2)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	require.Len(t, summary.Assets, 1)
	assert.Equal(t, "btc", summary.Assets[0].Asset.ID)
}

func TestComputeSummaryIncludeCashToggle(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "aapl", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
		{ID: "t2", AssetID: "usd", Type: models.TxDeposit, Amount: 1000, Date: day(2)},
	}

	withoutCash := ComputeSummary(transactions, testLookup, false)
	withCash := ComputeSummary(transactions, testLookup, true)

	// The buy derives an implicit 200 USD withdrawal, leaving 800 cash.
	assert.InDelta(t, 800.0, withCash.AvailableCash, 1e-9)
	assert.InDelta(t, withoutCash.AvailableCash, withCash.AvailableCash, 1e-9)

	// Toggling the flag changes totals by exactly the available cash.
	assert.InDelta(t, withoutCash.TotalValue+withCash.AvailableCash, withCash.TotalValue, 1e-9)

	assert.Empty(t, withoutCash.AssetsByType[models.AssetTypeCash])
	assert.Len(t, withCash.AssetsByType[models.AssetTypeCash], 1)
}

func TestComputeSummaryDeterministic(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 0.5, Price: 90000, Fee: 10, Date: day(1)},
		{ID: "t2", AssetID: "eth", Type: models.TxBuy, Amount: 4, Price: 1800, Fee: 5, Date: day(2)},
		{ID: "t3", AssetID: "btc", Type: models.TxSell, Amount: 0.2, Price: 110000, Fee: 8, Date: day(3)},
		{ID: "t4", AssetID: "usd", Type: models.TxDeposit, Amount: 5000, Date: day(4)},
		{ID: "t5", AssetID: "eur", Type: models.TxDeposit, Amount: 300, Date: day(5)},
	}

	first := ComputeSummary(transactions, testLookup, true)
	second := ComputeSummary(transactions, testLookup, true)
	assert.Equal(t, first, second)
}

func TestComputeSummaryDoesNotMutateInput(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t2", AssetID: "btc", Type: models.TxSell, Amount: 1, Price: 120, Date: day(5)},
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
	}

	ComputeSummary(transactions, testLookup, true)

	// The replay sorts a copy; the caller's slice keeps storage order.
	assert.Equal(t, "t2", transactions[0].ID)
	assert.Equal(t, "t1", transactions[1].ID)
}

func TestHeldAssetTypes(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(1)},
		{ID: "t2", AssetID: "aapl", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(2)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	held := HeldAssetTypes(summary)
	assert.Equal(t, []models.AssetType{models.AssetTypeCrypto, models.AssetTypeStocks}, held)
}

func TestAssetTypeValue(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", AssetID: "btc", Type: models.TxBuy, Amount: 2, Price: 100, Date: day(1)},
		{ID: "t2", AssetID: "eth", Type: models.TxBuy, Amount: 1, Price: 1500, Date: day(2)},
		{ID: "t3", AssetID: "aapl", Type: models.TxBuy, Amount: 1, Price: 100, Date: day(3)},
	}

	summary := ComputeSummary(transactions, testLookup, false)
	// 2*150 BTC + 1*2000 ETH at catalog prices.
	assert.InDelta(t, 2300.0, AssetTypeValue(summary, models.AssetTypeCrypto), 1e-9)
	assert.InDelta(t, 200.0, AssetTypeValue(summary, models.AssetTypeStocks), 1e-9)
	assert.Zero(t, AssetTypeValue(summary, models.AssetTypeNFTs))
}
