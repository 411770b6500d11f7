package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/StGrozdanov/finance-web/internal/common"
	"github.com/StGrozdanov/finance-web/internal/interfaces"
	"github.com/StGrozdanov/finance-web/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("finance-web MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleListPortfolios implements the list_portfolios tool
func handleListPortfolios(svc interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolios, err := svc.ListPortfolios(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("List portfolios failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatPortfolioList(portfolios)), nil
	}
}

// handleGetPortfolioSummary implements the get_portfolio_summary tool
func handleGetPortfolioSummary(svc interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolioID, err := request.RequireString("portfolio_id")
		if err != nil || portfolioID == "" {
			return errorResult("Error: portfolio_id parameter is required"), nil
		}
		includeCash := request.GetBool("include_cash", true)

		portfolio, err := svc.GetPortfolio(ctx, portfolioID)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		summary, err := svc.Summarize(ctx, portfolioID, includeCash)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", portfolioID).Msg("Summarize failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatSummary(portfolio, summary)), nil
	}
}

// handleGetCashBalances implements the get_cash_balances tool
func handleGetCashBalances(svc interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolioID, err := request.RequireString("portfolio_id")
		if err != nil || portfolioID == "" {
			return errorResult("Error: portfolio_id parameter is required"), nil
		}

		balances, err := svc.CashBalances(ctx, portfolioID)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", portfolioID).Msg("Cash balances failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatCashBalances(balances)), nil
	}
}

// handleGetDailyMovers implements the get_daily_movers tool
func handleGetDailyMovers(svc interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolioID, err := request.RequireString("portfolio_id")
		if err != nil || portfolioID == "" {
			return errorResult("Error: portfolio_id parameter is required"), nil
		}
		includeCash := request.GetBool("include_cash", true)

		stats, err := svc.Stats(ctx, portfolioID, includeCash)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", portfolioID).Msg("Stats failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(formatStats(stats)), nil
	}
}

// handleAddTransaction implements the add_transaction tool
func handleAddTransaction(svc interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		portfolioID, err := request.RequireString("portfolio_id")
		if err != nil || portfolioID == "" {
			return errorResult("Error: portfolio_id parameter is required"), nil
		}
		assetID, err := request.RequireString("asset_id")
		if err != nil || assetID == "" {
			return errorResult("Error: asset_id parameter is required"), nil
		}
		txType, err := request.RequireString("type")
		if err != nil || txType == "" {
			return errorResult("Error: type parameter is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return errorResult("Error: amount parameter is required"), nil
		}

		date := time.Now()
		if raw := request.GetString("date", ""); raw != "" {
			parsed, err := parseDate(raw)
			if err != nil {
				return errorResult(fmt.Sprintf("Error: invalid date %q", raw)), nil
			}
			date = parsed
		}

		tx := models.Transaction{
			AssetID: assetID,
			Type:    models.TransactionType(txType),
			Amount:  amount,
			Price:   request.GetFloat("price", 0),
			Fee:     request.GetFloat("fee", 0),
			Date:    date,
			Notes:   request.GetString("notes", ""),
			From:    models.TransferSource(request.GetString("from", "")),
		}
		opts := interfaces.TransactionOptions{
			HandleCash: request.GetBool("handle_cash", false),
		}

		portfolio, err := svc.AddTransaction(ctx, portfolioID, tx, opts)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", portfolioID).Msg("Add transaction failed")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		result := fmt.Sprintf("Transaction recorded in portfolio %q (%d transactions total).",
			portfolio.Name, len(portfolio.Transactions))
		return textResult(result), nil
	}
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
