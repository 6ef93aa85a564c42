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

const velodromeBaseURL = "https://api.velodrome.finance/api/v1/pairs"

// VelodromeClient fetches pair listings from the Velodrome DEX API.
type VelodromeClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewVelodromeClient creates a Velodrome client with the given timeout.
func NewVelodromeClient(timeout time.Duration, log *zap.Logger) *VelodromeClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &VelodromeClient{
		baseURL:    velodromeBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type velodromeResponse struct {
	Data []velodromePair `json:"data"`
}

type velodromePair struct {
	Address string `json:"address"`
	// Unix seconds.
	Created int64 `json:"created"`
	// TVL and reserves arrive as decimal strings.
	TVL       string  `json:"tvl"`
	Reserve0  string  `json:"reserve0"`
	Reserve1  string  `json:"reserve1"`
	VolumeUSD string  `json:"volumeUSD"`
	Token0    veloTok `json:"token0"`
}

type veloTok struct {
	Address string  `json:"address"`
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

func (p *velodromePair) toTokenRecord() models.TokenRecord {
	tvl, _ := strconv.ParseFloat(p.TVL, 64)
	reserve0, _ := strconv.ParseFloat(p.Reserve0, 64)
	reserve1, _ := strconv.ParseFloat(p.Reserve1, 64)
	volume, _ := strconv.ParseFloat(p.VolumeUSD, 64)

	var createdAt time.Time
	if p.Created > 0 {
		createdAt = time.Unix(p.Created, 0)
	}

	return models.TokenRecord{
		ContractAddress: p.Token0.Address,
		Symbol:          p.Token0.Symbol,
		Name:            p.Token0.Name,
		ChainID:         "optimism",
		Network:         "optimism",
		DexID:           "velodrome",
		PairAddress:     p.Address,
		PriceUSD:        p.Token0.Price,
		Liquidity: models.Liquidity{
			USD:   tvl,
			Base:  reserve0,
			Quote: reserve1,
		},
		Volume:        models.VolumeWindows{H24: volume},
		PairCreatedAt: createdAt,
		URL:           "https://velodrome.finance/liquidity/" + p.Address,
		Source:        "velodrome",
	}
}

// FreshPairs returns Velodrome pairs created within maxAge that carry at
// least minLiquidity USD of TVL.
func (c *VelodromeClient) FreshPairs(ctx context.Context, maxAge time.Duration, minLiquidity float64) ([]models.TokenRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "AlphaFinders/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("velodrome request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("velodrome status %d", resp.StatusCode)
	}

	var result velodromeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode velodrome response: %w", err)
	}

	now := time.Now()
	tokens := make([]models.TokenRecord, 0, len(result.Data))
	for i := range result.Data {
		token := result.Data[i].toTokenRecord()
		if token.AgeHours(now) > maxAge.Hours() || token.Liquidity.USD < minLiquidity {
			continue
		}
		tokens = append(tokens, token)
	}

	c.log.Info("velodrome fetch complete", zap.Int("tokens", len(tokens)))
	return tokens, nil
}
