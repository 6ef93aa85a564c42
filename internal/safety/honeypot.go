// Package safety implements the scam-filtering heuristics applied to fresh
// tokens before they reach scoring, plus the honeypot detection clients that
// both the filter and the deep contract analyzer rely on.
package safety

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const honeypotBaseURL = "https://api.honeypot.is/v2/IsHoneypot"

// optimism chain id for the honeypot.is API
const honeypotChainID = 10

// bytecodePatterns are opcode names whose presence in deployed bytecode marks
// a contract as a likely honeypot during the quick check.
var bytecodePatterns = []string{
	"selfdestruct",
	"delegatecall",
	"suicide",
}

// HoneypotResult is the outcome of a honeypot check from either source.
type HoneypotResult struct {
	IsHoneypot bool
	CanBuy     bool
	CanSell    bool
	BuyTax     float64
	SellTax    float64
}

// CodeReader fetches deployed bytecode for an address.
type CodeReader interface {
	Bytecode(ctx context.Context, address string) (string, error)
}

// QuickHoneypotCheck scans the deployed bytecode for suspicious opcode
// patterns. It fails open: on any fetch error the token is treated as clean.
func QuickHoneypotCheck(ctx context.Context, code CodeReader, address string) HoneypotResult {
	bytecode, err := code.Bytecode(ctx, address)
	if err != nil {
		return HoneypotResult{IsHoneypot: false, CanBuy: true, CanSell: true}
	}

	lowered := strings.ToLower(bytecode)
	for _, pattern := range bytecodePatterns {
		if strings.Contains(lowered, pattern) {
			return HoneypotResult{IsHoneypot: true}
		}
	}
	return HoneypotResult{IsHoneypot: false, CanBuy: true, CanSell: true}
}

// HoneypotClient queries the honeypot.is detection service.
type HoneypotClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewHoneypotClient creates a honeypot.is client with the given timeout.
func NewHoneypotClient(timeout time.Duration, log *zap.Logger) *HoneypotClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &HoneypotClient{
		baseURL:    honeypotBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type honeypotAPIResponse struct {
	IsHoneypot bool    `json:"isHoneypot"`
	BuyTax     float64 `json:"buyTax"`
	SellTax    float64 `json:"sellTax"`
}

// Check asks honeypot.is about the address. Callers fall back to
// QuickHoneypotCheck when this returns an error.
func (c *HoneypotClient) Check(ctx context.Context, address string) (HoneypotResult, error) {
	url := fmt.Sprintf("%s?address=%s&chainID=%d", c.baseURL, address, honeypotChainID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return HoneypotResult{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HoneypotResult{}, fmt.Errorf("honeypot request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HoneypotResult{}, fmt.Errorf("honeypot status %d", resp.StatusCode)
	}

	var apiResp honeypotAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return HoneypotResult{}, fmt.Errorf("decode honeypot response: %w", err)
	}

	return HoneypotResult{
		IsHoneypot: apiResp.IsHoneypot,
		CanBuy:     !apiResp.IsHoneypot,
		CanSell:    !apiResp.IsHoneypot,
		BuyTax:     apiResp.BuyTax,
		SellTax:    apiResp.SellTax,
	}, nil
}
