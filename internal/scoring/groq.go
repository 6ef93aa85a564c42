package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

const (
	groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel  = "llama-3.3-70b-versatile"
)

// GroqClient requests token commentary from the Groq chat-completion API.
type GroqClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewGroqClient creates a Groq client. Returns nil when no API key is
// configured, which disables AI narratives entirely.
func NewGroqClient(apiKey string, timeout time.Duration, log *zap.Logger) *GroqClient {
	if apiKey == "" {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GroqClient{
		apiURL:     groqAPIURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Recommend returns a short investment recommendation for the token.
func (c *GroqClient) Recommend(ctx context.Context, token *models.TokenRecord) (string, error) {
	prompt := fmt.Sprintf(`Analyze this TEA Protocol token and provide a brief investment recommendation (max 2 sentences):

Token: %s (%s)
Chain: Optimism (TEA Protocol)
Age: %.1f hours
Price: $%g
Liquidity: $%g
Volume 24h: $%g
Price Change 24h: %g%%
Transactions 24h: %d
Safety Score: %d

Provide a concise recommendation focusing on risk/reward.`,
		token.Symbol, token.Name,
		token.AgeHours(time.Now()),
		token.PriceUSD,
		token.Liquidity.USD,
		token.Volume.H24,
		token.PriceChange.H24,
		token.TotalTxns24h(),
		token.SafetyScore)

	return c.complete(ctx, prompt,
		"You are a cryptocurrency investment analyst specializing in TEA Protocol tokens. Provide brief, actionable insights.",
		150)
}

// DetailedAnalysis returns the longer structured commentary used by the deep
// analysis report.
func (c *GroqClient) DetailedAnalysis(ctx context.Context, token *models.TokenRecord) (string, error) {
	prompt := fmt.Sprintf(`Provide a detailed analysis of this TEA Protocol token:

Token: %s (%s)
Contract: %s
Chain: Optimism (TEA Protocol)
Age: %.1f hours
Current Price: $%g
Liquidity: $%g
Volume 24h: $%g
Market Cap: $%g
Price Change 24h: %g%%
Buy/Sell Ratio: %d/%d
Safety Score: %d

Analyze:
1. Risk factors (2-3 points)
2. Opportunity factors (2-3 points)
3. Final recommendation (1 sentence)

Be concise and actionable.`,
		token.Symbol, token.Name,
		token.ContractAddress,
		token.AgeHours(time.Now()),
		token.PriceUSD,
		token.Liquidity.USD,
		token.Volume.H24,
		token.MarketCap,
		token.PriceChange.H24,
		token.Txns.H24.Buys, token.Txns.H24.Sells,
		token.SafetyScore)

	return c.complete(ctx, prompt,
		"You are an expert cryptocurrency analyst for TEA Protocol. Provide structured, concise analysis.",
		300)
}

func (c *GroqClient) complete(ctx context.Context, prompt, system string, maxTokens int) (string, error) {
	body, err := json.Marshal(groqRequest{
		Model: groqModel,
		Messages: []groqMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq status %d", resp.StatusCode)
	}

	var result groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode groq response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
