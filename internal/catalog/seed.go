package catalog

import "github.com/StGrozdanov/finance-web/internal/models"

// seedAssets returns the built-in asset list. Prices and 24h changes are
// static demo data, not live quotes.
func seedAssets() []models.Asset {
	return []models.Asset{
		// Crypto
		{ID: "btc", Symbol: "BTC", Name: "Bitcoin", Type: models.AssetTypeCrypto, Price: 117634.57, Change24h: 2.45},
		{ID: "eth", Symbol: "ETH", Name: "Ethereum", Type: models.AssetTypeCrypto, Price: 4234.89, Change24h: -1.23},
		{ID: "xrp", Symbol: "XRP", Name: "XRP", Type: models.AssetTypeCrypto, Price: 2.84, Change24h: 5.67},
		{ID: "xlm", Symbol: "XLM", Name: "Stellar", Type: models.AssetTypeCrypto, Price: 0.654, Change24h: 3.21},
		{ID: "ltc", Symbol: "LTC", Name: "Litecoin", Type: models.AssetTypeCrypto, Price: 134.56, Change24h: -0.87},
		{ID: "usdt", Symbol: "USDT", Name: "Tether", Type: models.AssetTypeCrypto, Price: 1.0, Change24h: 0.01},
		{ID: "ada", Symbol: "ADA", Name: "Cardano", Type: models.AssetTypeCrypto, Price: 1.23, Change24h: 4.56},
		{ID: "trx", Symbol: "TRX", Name: "TRON", Type: models.AssetTypeCrypto, Price: 0.287, Change24h: 2.34},
		{ID: "sol", Symbol: "SOL", Name: "Solana", Type: models.AssetTypeCrypto, Price: 245.67, Change24h: 6.78},
		// Stocks
		{ID: "aapl", Symbol: "AAPL", Name: "Apple Inc.", Type: models.AssetTypeStocks, Price: 234.56, Change24h: 1.45},
		{ID: "tsla", Symbol: "TSLA", Name: "Tesla, Inc.", Type: models.AssetTypeStocks, Price: 338.89, Change24h: 3.21},
		{ID: "nvda", Symbol: "NVDA", Name: "NVIDIA Corporation", Type: models.AssetTypeStocks, Price: 145.67, Change24h: 2.34},
		{ID: "msft", Symbol: "MSFT", Name: "Microsoft Corporation", Type: models.AssetTypeStocks, Price: 456.78, Change24h: 0.87},
		{ID: "amzn", Symbol: "AMZN", Name: "Amazon.com, Inc.", Type: models.AssetTypeStocks, Price: 198.45, Change24h: -0.56},
		{ID: "googl", Symbol: "GOOGL", Name: "Alphabet Inc.", Type: models.AssetTypeStocks, Price: 187.92, Change24h: 1.23},
		{ID: "meta", Symbol: "META", Name: "Meta Platforms, Inc.", Type: models.AssetTypeStocks, Price: 587.34, Change24h: 2.15},
		{ID: "nflx", Symbol: "NFLX", Name: "Netflix, Inc.", Type: models.AssetTypeStocks, Price: 765.23, Change24h: -1.34},
		{ID: "uber", Symbol: "UBER", Name: "Uber Technologies, Inc.", Type: models.AssetTypeStocks, Price: 87.65, Change24h: 4.56},
		// Indices
		{ID: "sp500", Symbol: "SPY", Name: "S&P 500 ETF", Type: models.AssetTypeIndices, Price: 5234.67, Change24h: 0.89},
		{ID: "nasdaq", Symbol: "QQQ", Name: "NASDAQ-100 ETF", Type: models.AssetTypeIndices, Price: 456.78, Change24h: 1.45},
		{ID: "dow", Symbol: "DIA", Name: "Dow Jones Industrial Average ETF", Type: models.AssetTypeIndices, Price: 423.89, Change24h: 0.67},
		// Funds
		{ID: "vti", Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Type: models.AssetTypeFunds, Price: 289.45, Change24h: 1.12},
		{ID: "voo", Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Type: models.AssetTypeFunds, Price: 523.67, Change24h: 0.98},
		{ID: "arkk", Symbol: "ARKK", Name: "ARK Innovation ETF", Type: models.AssetTypeFunds, Price: 67.89, Change24h: 2.34},
		// Commodities
		{ID: "gold", Symbol: "GOLD", Name: "Gold", Type: models.AssetTypeCommodities, Price: 2756.78, Change24h: 0.45},
		{ID: "oil", Symbol: "OIL", Name: "Crude Oil", Type: models.AssetTypeCommodities, Price: 89.23, Change24h: -1.23},
		{ID: "silver", Symbol: "SILVER", Name: "Silver", Type: models.AssetTypeCommodities, Price: 32.45, Change24h: 1.87},
		// NFTs
		{ID: "bayc", Symbol: "BAYC", Name: "Bored Ape Yacht Club", Type: models.AssetTypeNFTs, Price: 12.34, Change24h: -5.67},
		{ID: "cryptopunks", Symbol: "PUNKS", Name: "CryptoPunks", Type: models.AssetTypeNFTs, Price: 34.56, Change24h: 2.34},
		{ID: "azuki", Symbol: "AZUKI", Name: "Azuki", Type: models.AssetTypeNFTs, Price: 8.9, Change24h: 4.56},
		// Cash
		{ID: "usd", Symbol: "USD", Name: "US Dollar", Type: models.AssetTypeCash, Price: 1.0, Change24h: 0.0},
		{ID: "eur", Symbol: "EUR", Name: "Euro", Type: models.AssetTypeCash, Price: 1.08, Change24h: 0.12},
	}
}
