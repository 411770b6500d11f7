package portfolio

import (
	"time"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// DemoPortfolio returns the seeded demo portfolio shown before the user has
// created one of their own. Dates and figures are fixed so the demo renders
// the same on every install.
func DemoPortfolio() *models.Portfolio {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
	}

	return &models.Portfolio{
		ID:     "demo",
		Name:   "Demo Portfolio",
		IsDemo: true,
		Transactions: []models.Transaction{
			{ID: "demo-0", AssetID: "usd", Type: models.TxDeposit, Amount: 100000, Price: 1, Date: day(time.January, 1), Notes: "USD cash deposit"},
			{ID: "demo-01", AssetID: "usd", Type: models.TxWithdrawal, Amount: 20000, Price: 1, Date: day(time.June, 1), Notes: "USD cash transfer"},
			{ID: "demo-02", AssetID: "eur", Type: models.TxDeposit, Amount: 1000, Price: 1, Date: day(time.January, 5), Notes: "EUR cash deposit"},
			// Crypto
			{ID: "demo-1", AssetID: "btc", Type: models.TxBuy, Amount: 0.25, Price: 45000, Fee: 25, Date: day(time.January, 15), Notes: "Initial Bitcoin purchase"},
			{ID: "demo-2", AssetID: "eth", Type: models.TxBuy, Amount: 8, Price: 2800, Fee: 15, Date: day(time.February, 1), Notes: "Ethereum investment"},
			{ID: "demo-3", AssetID: "sol", Type: models.TxBuy, Amount: 25, Price: 180, Fee: 8, Date: day(time.February, 15), Notes: "Solana purchase"},
			// Stocks
			{ID: "demo-4", AssetID: "nvda", Type: models.TxBuy, Amount: 27.74, Price: 179.41, Fee: 1.99, Date: day(time.March, 1), Notes: "NVIDIA stock purchase"},
			{ID: "demo-5", AssetID: "meta", Type: models.TxBuy, Amount: 5.78, Price: 774.70, Fee: 1.99, Date: day(time.March, 15), Notes: "Meta investment"},
			{ID: "demo-6", AssetID: "tsla", Type: models.TxBuy, Amount: 12.69, Price: 309.35, Fee: 1.99, Date: day(time.April, 1), Notes: "Tesla investment"},
			// Funds
			{ID: "demo-7", AssetID: "vti", Type: models.TxBuy, Amount: 15, Price: 280.50, Date: day(time.April, 15), Notes: "VTI ETF purchase"},
			// Commodities
			{ID: "demo-8", AssetID: "gold", Type: models.TxBuy, Amount: 2, Price: 2650.00, Fee: 25, Date: day(time.May, 1), Notes: "Gold investment"},
		},
	}
}
