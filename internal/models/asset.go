// Package models defines data structures for finance-web
package models

// AssetType classifies catalog assets into the seven supported categories.
type AssetType string

const (
	AssetTypeCrypto      AssetType = "crypto"
	AssetTypeStocks      AssetType = "stocks"
	AssetTypeIndices     AssetType = "indices"
	AssetTypeFunds       AssetType = "funds"
	AssetTypeCommodities AssetType = "commodities"
	AssetTypeNFTs        AssetType = "nfts"
	AssetTypeCash        AssetType = "cash"
)

// AllAssetTypes lists every asset type in display order. Consumers rely on
// summary buckets existing for all of these, even when empty.
func AllAssetTypes() []AssetType {
	return []AssetType{
		AssetTypeCrypto,
		AssetTypeStocks,
		AssetTypeIndices,
		AssetTypeFunds,
		AssetTypeCommodities,
		AssetTypeNFTs,
		AssetTypeCash,
	}
}

// validAssetTypes lists all accepted asset types.
var validAssetTypes = map[AssetType]bool{
	AssetTypeCrypto:      true,
	AssetTypeStocks:      true,
	AssetTypeIndices:     true,
	AssetTypeFunds:       true,
	AssetTypeCommodities: true,
	AssetTypeNFTs:        true,
	AssetTypeCash:        true,
}

// ValidAssetType returns true if t is a known asset type.
func ValidAssetType(t AssetType) bool {
	return validAssetTypes[t]
}

// Asset is immutable reference data describing a tradable instrument.
// The catalog owns these; the aggregation core only reads them.
type Asset struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Type      AssetType `json:"type"`
	Price     float64   `json:"price"`      // current unit price, static catalog data
	Change24h float64   `json:"change_24h"` // signed percent move over the last 24h
	ImageURL  string    `json:"image_url,omitempty"`
}

// IsCash returns true for cash-type assets (fiat currencies).
func (a Asset) IsCash() bool {
	return a.Type == AssetTypeCash
}

// AssetTypeInfo describes an asset type for presentation surfaces.
type AssetTypeInfo struct {
	Type        AssetType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// AssetTypeDescriptions returns display metadata for every asset type.
func AssetTypeDescriptions() []AssetTypeInfo {
	return []AssetTypeInfo{
		{AssetTypeCrypto, "Crypto", "Cryptocurrencies and digital assets"},
		{AssetTypeStocks, "Stocks", "Individual company stocks"},
		{AssetTypeIndices, "Indices", "Market indices and index funds"},
		{AssetTypeFunds, "Funds", "ETFs and mutual funds"},
		{AssetTypeCommodities, "Commodities", "Gold, oil, and other commodities"},
		{AssetTypeNFTs, "NFT", "Non-fungible tokens"},
		{AssetTypeCash, "Available Cash", "Cash and fiat currency"},
	}
}
