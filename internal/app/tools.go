package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the finance-web MCP server version and status. Use this to verify connectivity."),
	)
}

// createListPortfoliosTool returns the list_portfolios tool definition
func createListPortfoliosTool() mcp.Tool {
	return mcp.NewTool("list_portfolios",
		mcp.WithDescription("List all portfolios with their IDs, names, and transaction counts."),
	)
}

// createGetPortfolioSummaryTool returns the get_portfolio_summary tool definition
func createGetPortfolioSummaryTool() mcp.Tool {
	return mcp.NewTool("get_portfolio_summary",
		mcp.WithDescription("Get the valuation summary of a portfolio: holdings, total value, unrealized gains, and diversity by asset type."),
		mcp.WithString("portfolio_id",
			mcp.Required(),
			mcp.Description("ID of the portfolio to summarize"),
		),
		mcp.WithBoolean("include_cash",
			mcp.Description("Include available cash in totals and listings (default: true)"),
		),
	)
}

// createGetCashBalancesTool returns the get_cash_balances tool definition
func createGetCashBalancesTool() mcp.Tool {
	return mcp.NewTool("get_cash_balances",
		mcp.WithDescription("Get per-currency cash balances (USD, EUR) and the derived cash ledger for a portfolio. Trades of non-cash assets appear as implicit cash movements."),
		mcp.WithString("portfolio_id",
			mcp.Required(),
			mcp.Description("ID of the portfolio"),
		),
	)
}

// createGetDailyMoversTool returns the get_daily_movers tool definition
func createGetDailyMoversTool() mcp.Tool {
	return mcp.NewTool("get_daily_movers",
		mcp.WithDescription("Get the portfolio's daily movers ranked by absolute 24h price change, plus best and worst performers."),
		mcp.WithString("portfolio_id",
			mcp.Required(),
			mcp.Description("ID of the portfolio"),
		),
		mcp.WithBoolean("include_cash",
			mcp.Description("Include cash positions (default: true)"),
		),
	)
}

// createAddTransactionTool returns the add_transaction tool definition
func createAddTransactionTool() mcp.Tool {
	return mcp.NewTool("add_transaction",
		mcp.WithDescription("Record a transaction against a portfolio. Buys and sells require a price; transfers require a source."),
		mcp.WithString("portfolio_id",
			mcp.Required(),
			mcp.Description("ID of the portfolio"),
		),
		mcp.WithString("asset_id",
			mcp.Required(),
			mcp.Description("Catalog asset ID (e.g. 'btc', 'aapl', 'usd')"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Transaction type: buy, sell, transfer, deposit, withdrawal"),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Quantity of asset units"),
		),
		mcp.WithNumber("price",
			mcp.Description("Unit price at execution (required for buy/sell)"),
		),
		mcp.WithNumber("fee",
			mcp.Description("Transaction fee (default: 0)"),
		),
		mcp.WithString("date",
			mcp.Description("Transaction date in RFC 3339 or YYYY-MM-DD form (default: now)"),
		),
		mcp.WithString("from",
			mcp.Description("Transfer source: exchange, my_wallet, other_wallet, airdrop, mining, fork, dividends_staking, other_unknown"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
		mcp.WithBoolean("handle_cash",
			mcp.Description("Append a paired USD cash movement for priced trades (default: false)"),
		),
	)
}
