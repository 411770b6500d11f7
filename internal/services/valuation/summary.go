// Package valuation computes portfolio holdings, totals, and cash balances
// by replaying a portfolio's transaction history against the asset catalog.
// All functions are pure: no I/O, no mutation of inputs, deterministic for
// identical inputs.
package valuation

import (
	"sort"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// Lookup resolves a catalog asset by ID.
type Lookup func(id string) (models.Asset, bool)

// ComputeSummary replays transactions into per-asset holdings and aggregates
// them into a portfolio summary.
//
// Transactions are replayed in date order (stable for equal dates), not
// storage order: the proportional cost-basis reduction on sells is only
// correct once prior buys are folded in.
//
// Cash handling follows a single rule: cash-type positions never contribute
// to TotalValue directly. AvailableCash (from DeriveCashBalances) is added
// exactly once when includeCash is true, and cash positions appear in the
// asset lists only in that case.
func ComputeSummary(transactions []models.Transaction, lookup Lookup, includeCash bool) models.PortfolioSummary {
	holdings, order := accumulate(transactions, lookup)

	summary := models.PortfolioSummary{
		Assets:       []models.PortfolioAsset{},
		AssetsByType: emptyTypeBuckets(),
		IncludesCash: includeCash,
	}

	summary.AvailableCash = DeriveCashBalances(transactions, lookup).TotalBalance

	for _, assetID := range order {
		holding := holdings[assetID]
		if holding.Quantity <= 0 {
			continue
		}

		asset, ok := lookup(assetID)
		if !ok {
			// Asset no longer in the catalog: a data consistency gap, not an error.
			continue
		}

		currentValue := holding.Quantity * asset.Price
		unrealizedGain := currentValue - holding.TotalInvested
		var gainPct float64
		if holding.TotalInvested > 0 {
			gainPct = unrealizedGain / holding.TotalInvested * 100
		}

		position := models.PortfolioAsset{
			Asset:                    asset,
			Quantity:                 holding.Quantity,
			AveragePrice:             holding.TotalInvested / holding.Quantity,
			CurrentValue:             currentValue,
			TotalInvested:            holding.TotalInvested,
			UnrealizedGain:           unrealizedGain,
			UnrealizedGainPercentage: gainPct,
		}

		if asset.IsCash() {
			if includeCash {
				summary.Assets = append(summary.Assets, position)
				summary.AssetsByType[asset.Type] = append(summary.AssetsByType[asset.Type], position)
				summary.TotalInvested += holding.TotalInvested
			}
			continue
		}

		summary.Assets = append(summary.Assets, position)
		summary.AssetsByType[asset.Type] = append(summary.AssetsByType[asset.Type], position)
		summary.TotalValue += currentValue
		summary.TotalInvested += holding.TotalInvested
	}

	if includeCash {
		summary.TotalValue += summary.AvailableCash
	}

	summary.TotalUnrealizedGain = summary.TotalValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.TotalUnrealizedGainPercentage = summary.TotalUnrealizedGain / summary.TotalInvested * 100
	}

	return summary
}

// accumulate replays transactions into per-asset holdings. The returned
// order preserves first appearance so output is deterministic.
func accumulate(transactions []models.Transaction, lookup Lookup) (map[string]*models.Holding, []string) {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	holdings := make(map[string]*models.Holding)
	var order []string

	for _, tx := range ordered {
		holding, ok := holdings[tx.AssetID]
		if !ok {
			holding = &models.Holding{AssetID: tx.AssetID}
			holdings[tx.AssetID] = holding
			order = append(order, tx.AssetID)
		}

		switch tx.Type {
		case models.TxBuy:
			holding.Quantity += tx.Amount
			holding.TotalInvested += tx.Amount * tx.Price
			holding.TotalFees += tx.Fee

		case models.TxSell:
			// Average-cost method: remove the fraction of the cost basis
			// matching the fraction of the pre-sale quantity being sold.
			// Guard the degenerate cases instead of dividing by zero:
			// selling with nothing held leaves the basis unchanged, and
			// overselling clamps the basis at zero.
			quantityBefore := holding.Quantity
			if quantityBefore > 0 {
				fraction := tx.Amount / quantityBefore
				if fraction > 1 {
					fraction = 1
				}
				holding.TotalInvested -= holding.TotalInvested * fraction
			}
			holding.Quantity -= tx.Amount
			holding.TotalFees += tx.Fee

		case models.TxTransfer:
			// Only transfers from external sources add units. Current catalog
			// price stands in for the unknown cost basis at transfer time.
			if tx.From.IsExternalInflow() {
				holding.Quantity += tx.Amount
				if asset, ok := lookup(tx.AssetID); ok {
					holding.TotalInvested += tx.Amount * asset.Price
				}
			}
			holding.TotalFees += tx.Fee

		case models.TxDeposit:
			holding.Quantity += tx.Amount

		case models.TxWithdrawal:
			holding.Quantity -= tx.Amount
		}
	}

	return holdings, order
}

// emptyTypeBuckets returns an assets-by-type map with all seven keys present.
func emptyTypeBuckets() map[models.AssetType][]models.PortfolioAsset {
	buckets := make(map[models.AssetType][]models.PortfolioAsset, 7)
	for _, t := range models.AllAssetTypes() {
		buckets[t] = []models.PortfolioAsset{}
	}
	return buckets
}

// AssetTypeValue returns the combined current value of one type bucket.
func AssetTypeValue(summary models.PortfolioSummary, t models.AssetType) float64 {
	var total float64
	for _, position := range summary.AssetsByType[t] {
		total += position.CurrentValue
	}
	return total
}

// HeldAssetTypes returns the asset types with at least one open position,
// in display order.
func HeldAssetTypes(summary models.PortfolioSummary) []models.AssetType {
	var held []models.AssetType
	for _, t := range models.AllAssetTypes() {
		if len(summary.AssetsByType[t]) > 0 {
			held = append(held, t)
		}
	}
	return held
}
