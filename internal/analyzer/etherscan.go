package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const etherscanBaseURL = "https://api-optimistic.etherscan.io/api"

// EtherscanClient queries the Optimism block explorer for verified contract
// source code.
type EtherscanClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewEtherscanClient creates an explorer client. An empty API key still
// works at the explorer's degraded anonymous rate limit.
func NewEtherscanClient(apiKey string, timeout time.Duration, log *zap.Logger) *EtherscanClient {
	if log == nil {
		log = zap.NewNop()
	}
	if apiKey == "" {
		apiKey = "YourApiKeyToken"
	}
	return &EtherscanClient{
		baseURL:    etherscanBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type etherscanSourceResponse struct {
	Result []struct {
		SourceCode string `json:"SourceCode"`
	} `json:"result"`
}

// IsSourceVerified reports whether the contract's source code is published
// and verified on the explorer.
func (c *EtherscanClient) IsSourceVerified(ctx context.Context, address string) (bool, error) {
	params := url.Values{}
	params.Set("module", "contract")
	params.Set("action", "getsourcecode")
	params.Set("address", address)
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("etherscan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("etherscan status %d", resp.StatusCode)
	}

	var result etherscanSourceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode etherscan response: %w", err)
	}

	return len(result.Result) > 0 && result.Result[0].SourceCode != "", nil
}
