// Package market implements the clients and the fetcher for token/pair
// listings on the TEA Protocol network (Optimism).
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

const dexScreenerBaseURL = "https://api.dexscreener.com/latest/dex/tokens"

// DexScreenerClient fetches pair listings from the DexScreener API.
type DexScreenerClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewDexScreenerClient creates a DexScreener client with the given timeout.
func NewDexScreenerClient(timeout time.Duration, log *zap.Logger) *DexScreenerClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &DexScreenerClient{
		baseURL:    dexScreenerBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type dexScreenerResponse struct {
	Pairs []dexScreenerPair `json:"pairs"`
}

type dexScreenerPair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	URL         string `json:"url"`
	PairAddress string `json:"pairAddress"`
	BaseToken   struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceUSD    string                    `json:"priceUsd"`
	Txns        models.TxnWindows         `json:"txns"`
	Volume      models.VolumeWindows      `json:"volume"`
	PriceChange models.PriceChangeWindows `json:"priceChange"`
	Liquidity   models.Liquidity          `json:"liquidity"`
	FDV         float64                   `json:"fdv"`
	// Unix milliseconds.
	PairCreatedAt int64 `json:"pairCreatedAt"`
}

func (p *dexScreenerPair) toTokenRecord() models.TokenRecord {
	price, _ := strconv.ParseFloat(p.PriceUSD, 64)

	var createdAt time.Time
	if p.PairCreatedAt > 0 {
		createdAt = time.UnixMilli(p.PairCreatedAt)
	}

	return models.TokenRecord{
		ContractAddress: p.BaseToken.Address,
		Symbol:          p.BaseToken.Symbol,
		Name:            p.BaseToken.Name,
		ChainID:         "optimism",
		Network:         "optimism",
		DexID:           p.DexID,
		PairAddress:     p.PairAddress,
		PriceUSD:        price,
		Liquidity:       p.Liquidity,
		Volume:          p.Volume,
		PriceChange:     p.PriceChange,
		Txns:            p.Txns,
		MarketCap:       p.FDV,
		PairCreatedAt:   createdAt,
		URL:             p.URL,
		Source:          "dexscreener",
	}
}

// FreshPairs returns Optimism pairs created within maxAge that carry at least
// minLiquidity USD.
func (c *DexScreenerClient) FreshPairs(ctx context.Context, maxAge time.Duration, minLiquidity float64) ([]models.TokenRecord, error) {
	pairs, err := c.fetchPairs(ctx, c.baseURL+"/optimism")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tokens := make([]models.TokenRecord, 0, len(pairs))
	for i := range pairs {
		token := pairs[i].toTokenRecord()
		if token.AgeHours(now) > maxAge.Hours() || token.Liquidity.USD < minLiquidity {
			continue
		}
		tokens = append(tokens, token)
	}

	c.log.Info("dexscreener fetch complete", zap.Int("tokens", len(tokens)))
	return tokens, nil
}

// Token returns market data for a single contract address, taken from its
// first listed pair, or nil when no pair exists.
func (c *DexScreenerClient) Token(ctx context.Context, address string) (*models.TokenRecord, error) {
	pairs, err := c.fetchPairs(ctx, c.baseURL+"/"+address)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	token := pairs[0].toTokenRecord()
	return &token, nil
}

func (c *DexScreenerClient) fetchPairs(ctx context.Context, url string) ([]dexScreenerPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "AlphaFinders/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener status %d", resp.StatusCode)
	}

	var result dexScreenerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode dexscreener response: %w", err)
	}
	return result.Pairs, nil
}
