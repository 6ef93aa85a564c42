package safety

import (
	"context"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

// FilterParams holds the tunable thresholds of the safety filter.
type FilterParams struct {
	MinLiquidityUSD float64
}

// DefaultFilterParams returns the thresholds used in production.
func DefaultFilterParams() FilterParams {
	return FilterParams{MinLiquidityUSD: 100}
}

// Filter discards obvious scams and risky tokens from a fetched batch and
// attaches a safety score to every survivor.
type Filter struct {
	code   CodeReader
	params FilterParams
	log    *zap.Logger
}

// NewFilter creates a filter reading bytecode through the given reader.
func NewFilter(code CodeReader, params FilterParams, log *zap.Logger) *Filter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Filter{code: code, params: params, log: log}
}

// FilterSafe applies the safety rules to each token in order. The first
// failing rule excludes the token; survivors keep their input order and
// receive a SafetyScore. Per-token problems are logged, never propagated.
func (f *Filter) FilterSafe(ctx context.Context, tokens []models.TokenRecord) []models.TokenRecord {
	f.log.Info("filtering tokens for safety", zap.Int("count", len(tokens)))

	safe := make([]models.TokenRecord, 0, len(tokens))
	for _, token := range tokens {
		if token.ContractAddress == "" || token.Liquidity.USD == 0 {
			continue
		}

		if token.Liquidity.USD < f.params.MinLiquidityUSD {
			f.log.Debug("low liquidity",
				zap.String("symbol", token.Symbol),
				zap.Float64("liquidityUsd", token.Liquidity.USD))
			continue
		}

		if IsSuspicious(&token) {
			f.log.Debug("suspicious patterns detected", zap.String("symbol", token.Symbol))
			continue
		}

		hp := QuickHoneypotCheck(ctx, f.code, token.ContractAddress)
		if hp.IsHoneypot {
			f.log.Debug("honeypot detected", zap.String("symbol", token.Symbol))
			continue
		}

		token.SafetyScore = SafetyScore(&token, hp)
		safe = append(safe, token)
	}

	f.log.Info("safe tokens found", zap.Int("count", len(safe)))
	return safe
}
