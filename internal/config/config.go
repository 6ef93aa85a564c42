package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment.
// Optional credentials disable their feature when empty.
type Config struct {
	TelegramToken   string
	OptimismRPCURL  string
	GroqAPIKey      string
	EtherscanAPIKey string

	LogLevel         string
	HTTPTimeout      time.Duration
	MaxTokenAge      time.Duration
	MinLiquidityUSD  float64
	MaxTokensPerScan int
	MessageRate      float64
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	timeout, _ := strconv.Atoi(getEnvWithDefault("HTTP_TIMEOUT_SECONDS", "15"))
	maxAge, _ := strconv.Atoi(getEnvWithDefault("MAX_TOKEN_AGE_HOURS", "24"))
	minLiquidity, _ := strconv.ParseFloat(getEnvWithDefault("MIN_LIQUIDITY_USD", "100"), 64)
	maxTokens, _ := strconv.Atoi(getEnvWithDefault("MAX_TOKENS_PER_SCAN", "50"))
	msgRate, _ := strconv.ParseFloat(getEnvWithDefault("MESSAGE_RATE", "2"), 64)

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		OptimismRPCURL:   getEnvWithDefault("OPTIMISM_RPC_URL", "https://mainnet.optimism.io"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		EtherscanAPIKey:  os.Getenv("ETHERSCAN_API_KEY"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		HTTPTimeout:      time.Duration(timeout) * time.Second,
		MaxTokenAge:      time.Duration(maxAge) * time.Hour,
		MinLiquidityUSD:  minLiquidity,
		MaxTokensPerScan: maxTokens,
		MessageRate:      msgRate,
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
