package valuation

import (
	"sort"
	"strings"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// EURUSDRate is the fixed conversion rate used to fold EUR balances into the
// USD reporting total. Static demo data; a real deployment needs a live
// rate source.
const EURUSDRate = 1.08

// usdAssetID is the cash asset implicit buy/sell flows settle in.
const usdAssetID = "usd"

// DeriveCashBalances computes per-currency cash balances from a portfolio's
// transaction history. Explicit transactions against cash-type assets pass
// through directly; buys and sells of other assets are translated into
// implicit USD movements (a buy withdraws amount*price+fee, a sell deposits
// amount*price-fee). Balances are floored at zero: over-withdrawal is
// absorbed silently rather than producing negative cash.
func DeriveCashBalances(transactions []models.Transaction, lookup Lookup) models.CashBalances {
	var entries []models.CashEntry

	for _, tx := range transactions {
		if asset, ok := lookup(tx.AssetID); ok && asset.IsCash() {
			entries = append(entries, models.CashEntry{
				ID:      tx.ID,
				AssetID: tx.AssetID,
				Type:    tx.Type,
				Amount:  tx.Amount,
				Date:    tx.Date,
				Notes:   tx.Notes,
			})
			continue
		}

		switch {
		case tx.Type == models.TxBuy && tx.Price > 0:
			entries = append(entries, models.CashEntry{
				ID:      "cash-" + tx.ID + "-out",
				AssetID: usdAssetID,
				Type:    models.TxWithdrawal,
				Amount:  tx.Amount*tx.Price + tx.Fee,
				Date:    tx.Date,
				Notes:   "Bought " + assetSymbol(lookup, tx.AssetID),
				Derived: true,
			})
		case tx.Type == models.TxSell && tx.Price > 0:
			entries = append(entries, models.CashEntry{
				ID:      "cash-" + tx.ID + "-in",
				AssetID: usdAssetID,
				Type:    models.TxDeposit,
				Amount:  tx.Amount*tx.Price - tx.Fee,
				Date:    tx.Date,
				Notes:   "Proceeds from " + assetSymbol(lookup, tx.AssetID) + " sell",
				Derived: true,
			})
		}
	}

	balances := models.CashBalances{
		USDBalance: floorZero(sumEntries(entries, lookup, "USD")),
		EURBalance: floorZero(sumEntries(entries, lookup, "EUR")),
	}
	balances.TotalBalance = floorZero(balances.USDBalance + balances.EURBalance*EURUSDRate)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	balances.Entries = entries

	return balances
}

// sumEntries nets deposits against withdrawals for one currency symbol.
// Entry types other than deposit/withdrawal do not move the balance.
func sumEntries(entries []models.CashEntry, lookup Lookup, symbol string) float64 {
	var sum float64
	for _, e := range entries {
		asset, ok := lookup(e.AssetID)
		if !ok || !strings.EqualFold(asset.Symbol, symbol) {
			continue
		}
		switch e.Type {
		case models.TxDeposit:
			sum += e.Amount
		case models.TxWithdrawal:
			sum -= e.Amount
		}
	}
	return sum
}

func assetSymbol(lookup Lookup, assetID string) string {
	if asset, ok := lookup(assetID); ok {
		return asset.Symbol
	}
	return assetID
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
