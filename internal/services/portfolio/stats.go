package portfolio

import (
	"context"
	"math"
	"sort"

	"github.com/StGrozdanov/finance-web/internal/models"
	"github.com/StGrozdanov/finance-web/internal/services/valuation"
)

// Stats computes headline dashboard figures from the valuation summary:
// total value, gross capital invested, the 24h change implied by catalog
// change percentages, best and worst performer, and daily movers ranked by
// absolute 24h move.
func (s *Service) Stats(ctx context.Context, portfolioID string, includeCash bool) (*models.PortfolioStats, error) {
	portfolio, err := s.storage.PortfolioStore().GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	summary := valuation.ComputeSummary(portfolio.Transactions, s.catalog.Lookup, includeCash)

	// Gross capital in: every buy and deposit at its transaction price
	// (defaulting to 1 for unpriced deposits), fees included.
	var totalInvestment float64
	for _, tx := range portfolio.Transactions {
		if tx.Type != models.TxBuy && tx.Type != models.TxDeposit {
			continue
		}
		price := tx.Price
		if price == 0 {
			price = 1
		}
		totalInvestment += tx.Amount*price + tx.Fee
	}

	var dailyChange float64
	for _, a := range summary.Assets {
		dailyChange += (a.Asset.Change24h / 100) * a.CurrentValue
	}
	var dailyChangePct float64
	if summary.TotalValue > 0 {
		dailyChangePct = (dailyChange / summary.TotalValue) * 100
	}

	performers := make([]models.Performer, 0, len(summary.Assets))
	for _, a := range summary.Assets {
		performers = append(performers, models.Performer{
			Asset:       a.Asset,
			Performance: a.UnrealizedGainPercentage,
			Value:       a.CurrentValue,
			TotalGain:   a.UnrealizedGain,
		})
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Performance > performers[j].Performance
	})

	var best, worst *models.Performer
	if len(performers) > 0 {
		b := performers[0]
		w := performers[len(performers)-1]
		best, worst = &b, &w
	}

	movers := make([]models.DailyMover, 0, len(summary.Assets))
	for _, a := range summary.Assets {
		movers = append(movers, models.DailyMover{
			Asset:         a.Asset,
			Change:        a.Asset.Change24h,
			Value:         a.CurrentValue,
			Quantity:      a.Quantity,
			DailyGainLoss: (a.Asset.Change24h / 100) * a.CurrentValue,
		})
	}
	sort.SliceStable(movers, func(i, j int) bool {
		return math.Abs(movers[i].Change) > math.Abs(movers[j].Change)
	})

	return &models.PortfolioStats{
		TotalValue:            summary.TotalValue,
		TotalInvestment:       totalInvestment,
		DailyChange:           dailyChange,
		DailyChangePercentage: dailyChangePct,
		BestPerformer:         best,
		WorstPerformer:        worst,
		DailyMovers:           movers,
	}, nil
}
