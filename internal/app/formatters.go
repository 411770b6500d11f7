package app

import (
	"fmt"
	"strings"

	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/models"
	"github.com/StGrozdanov/finance-web/internal/services/valuation"
)

// Delegate to common format helpers
func formatMoney(v float64) string       { return common.FormatMoney(v) }
func formatSignedMoney(v float64) string { return common.FormatSignedMoney(v) }
func formatSignedPct(v float64) string   { return common.FormatSignedPct(v) }

// formatPortfolioList formats the portfolio index as markdown
func formatPortfolioList(portfolios []*models.Portfolio) string {
	if len(portfolios) == 0 {
		return "No portfolios found."
	}

	var sb strings.Builder
	sb.WriteString("# Portfolios\n\n")
	sb.WriteString("| ID | Name | Transactions | Created |\n")
	sb.WriteString("|----|------|--------------|--------|\n")
	for _, p := range portfolios {
		name := p.Name
		if p.IsDemo {
			name += " (demo)"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n",
			p.ID, name, len(p.Transactions), p.CreatedAt.Format("2006-01-02")))
	}
	return sb.String()
}

// formatSummary formats a valuation summary as markdown
func formatSummary(portfolio *models.Portfolio, summary *models.PortfolioSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Portfolio Summary: %s\n\n", portfolio.Name))
	sb.WriteString(fmt.Sprintf("**Total Value:** %s\n", formatMoney(summary.TotalValue)))
	sb.WriteString(fmt.Sprintf("**Total Invested:** %s\n", formatMoney(summary.TotalInvested)))
	sb.WriteString(fmt.Sprintf("**Unrealized Gain:** %s (%s)\n",
		formatSignedMoney(summary.TotalUnrealizedGain), formatSignedPct(summary.TotalUnrealizedGainPercentage)))
	if summary.IncludesCash {
		sb.WriteString(fmt.Sprintf("**Available Cash:** %s\n", formatMoney(summary.AvailableCash)))
	}
	sb.WriteString("\n")

	if len(summary.Assets) == 0 {
		sb.WriteString("No holdings.\n")
		return sb.String()
	}

	sb.WriteString("## Holdings\n\n")
	sb.WriteString("| Symbol | Qty | Avg Buy | Price | Value | Gain | Gain % |\n")
	sb.WriteString("|--------|-----|---------|-------|-------|------|--------|\n")
	for _, a := range summary.Assets {
		sb.WriteString(fmt.Sprintf("| %s | %.4f | %s | %s | %s | %s | %s |\n",
			a.Asset.Symbol, a.Quantity,
			formatMoney(a.AveragePrice), formatMoney(a.Asset.Price), formatMoney(a.CurrentValue),
			formatSignedMoney(a.UnrealizedGain), formatSignedPct(a.UnrealizedGainPercentage)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Diversity\n\n")
	for _, t := range valuation.HeldAssetTypes(*summary) {
		sb.WriteString(fmt.Sprintf("- **%s**: %d position(s), %s\n",
			t, len(summary.AssetsByType[t]), formatMoney(valuation.AssetTypeValue(*summary, t))))
	}

	return sb.String()
}

// formatCashBalances formats cash balances and the ledger as markdown
func formatCashBalances(balances *models.CashBalances) string {
	var sb strings.Builder

	sb.WriteString("# Cash Balances\n\n")
	sb.WriteString(fmt.Sprintf("**USD:** %s\n", formatMoney(balances.USDBalance)))
	sb.WriteString(fmt.Sprintf("**EUR:** €%.2f\n", balances.EURBalance))
	sb.WriteString(fmt.Sprintf("**Total (USD):** %s\n\n", formatMoney(balances.TotalBalance)))

	if len(balances.Entries) == 0 {
		sb.WriteString("No cash activity.\n")
		return sb.String()
	}

	sb.WriteString("## Ledger\n\n")
	sb.WriteString("| Date | Type | Amount | Currency | Notes |\n")
	sb.WriteString("|------|------|--------|----------|-------|\n")
	for _, e := range balances.Entries {
		notes := e.Notes
		if e.Derived {
			notes += " (derived)"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s | %s |\n",
			e.Date.Format("2006-01-02"), e.Type, e.Amount, strings.ToUpper(e.AssetID), strings.TrimSpace(notes)))
	}

	return sb.String()
}

// formatStats formats daily movers and performers as markdown
func formatStats(stats *models.PortfolioStats) string {
	var sb strings.Builder

	sb.WriteString("# Daily Movers\n\n")
	sb.WriteString(fmt.Sprintf("**Total Value:** %s\n", formatMoney(stats.TotalValue)))
	sb.WriteString(fmt.Sprintf("**Daily Change:** %s (%s)\n\n",
		formatSignedMoney(stats.DailyChange), formatSignedPct(stats.DailyChangePercentage)))

	if stats.BestPerformer != nil {
		sb.WriteString(fmt.Sprintf("**Best Performer:** %s %s\n",
			stats.BestPerformer.Asset.Symbol, formatSignedPct(stats.BestPerformer.Performance)))
	}
	if stats.WorstPerformer != nil {
		sb.WriteString(fmt.Sprintf("**Worst Performer:** %s %s\n",
			stats.WorstPerformer.Asset.Symbol, formatSignedPct(stats.WorstPerformer.Performance)))
	}
	sb.WriteString("\n")

	if len(stats.DailyMovers) == 0 {
		sb.WriteString("No positions.\n")
		return sb.String()
	}

	sb.WriteString("| Symbol | 24h Change | Value | Daily Gain/Loss |\n")
	sb.WriteString("|--------|-----------|-------|----------------|\n")
	for _, m := range stats.DailyMovers {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			m.Asset.Symbol, formatSignedPct(m.Change), formatMoney(m.Value), formatSignedMoney(m.DailyGainLoss)))
	}

	return sb.String()
}
