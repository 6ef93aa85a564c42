package models

import (
	"strings"
	"time"
)

// Liquidity holds the pool liquidity amounts for a pair.
type Liquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// VolumeWindows holds traded volume in USD per time window.
type VolumeWindows struct {
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PriceChangeWindows holds price change percentages per time window.
type PriceChangeWindows struct {
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// TxnCount holds buy and sell transaction counts for one window.
type TxnCount struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// TxnWindows holds transaction counts per time window.
type TxnWindows struct {
	H1  TxnCount `json:"h1"`
	H6  TxnCount `json:"h6"`
	H24 TxnCount `json:"h24"`
}

// TokenRecord is one discovered token/pair, normalized across market sources.
// Derived fields (SafetyScore, DegenScore, InvestmentPotential,
// AIRecommendation) are filled in by the filter and scoring stages.
type TokenRecord struct {
	ContractAddress string             `json:"contractAddress"`
	Symbol          string             `json:"symbol"`
	Name            string             `json:"name"`
	ChainID         string             `json:"chainId"`
	Network         string             `json:"network"`
	DexID           string             `json:"dexId"`
	PairAddress     string             `json:"pairAddress"`
	PriceUSD        float64            `json:"priceUsd"`
	Liquidity       Liquidity          `json:"liquidity"`
	Volume          VolumeWindows      `json:"volume"`
	PriceChange     PriceChangeWindows `json:"priceChange"`
	Txns            TxnWindows         `json:"txns"`
	MarketCap       float64            `json:"marketCap"`
	BuyTax          float64            `json:"buyTax"`
	SellTax         float64            `json:"sellTax"`
	PairCreatedAt   time.Time          `json:"pairCreatedAt"`
	URL             string             `json:"url"`
	Source          string             `json:"source"`

	SafetyScore         int     `json:"safetyScore"`
	DegenScore          float64 `json:"degenScore"`
	InvestmentPotential string  `json:"investmentPotential"`
	AIRecommendation    string  `json:"aiRecommendation,omitempty"`
}

// UnknownAgeHours is reported for tokens without a pair creation timestamp,
// so they never pass a recency window.
const UnknownAgeHours = 999

// AgeHours returns the pair age in hours at the given instant.
func (t *TokenRecord) AgeHours(now time.Time) float64 {
	if t.PairCreatedAt.IsZero() {
		return UnknownAgeHours
	}
	return now.Sub(t.PairCreatedAt).Hours()
}

// TotalTxns24h returns the combined buy and sell count over 24h.
func (t *TokenRecord) TotalTxns24h() int {
	return t.Txns.H24.Buys + t.Txns.H24.Sells
}

// AddressKey returns the contract address normalized for comparison.
func (t *TokenRecord) AddressKey() string {
	return strings.ToLower(t.ContractAddress)
}

// WatchlistEntry is a token saved to one user's watchlist.
type WatchlistEntry struct {
	ContractAddress string    `json:"contractAddress"`
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	ChainID         string    `json:"chainId"`
	AddedAt         time.Time `json:"addedAt"`
	PriceAtAdd      float64   `json:"priceAtAdd"`
}
