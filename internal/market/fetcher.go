package market

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

// PairSource lists fresh pairs from one market-data provider.
type PairSource interface {
	FreshPairs(ctx context.Context, maxAge time.Duration, minLiquidity float64) ([]models.TokenRecord, error)
}

// Fetcher aggregates pair listings from all configured sources, deduplicates
// them by contract address, and keeps only recently created pairs.
type Fetcher struct {
	sources      []PairSource
	maxAge       time.Duration
	minLiquidity float64
	log          *zap.Logger
}

// NewFetcher wires the given sources into a fetcher. Sources are queried in
// order; on duplicate addresses the earlier source wins.
func NewFetcher(sources []PairSource, maxAge time.Duration, minLiquidity float64, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		sources:      sources,
		maxAge:       maxAge,
		minLiquidity: minLiquidity,
		log:          log,
	}
}

// FetchFresh returns all tokens whose pair was created within the recency
// window. A failing source contributes nothing; total failure yields an
// empty list, never an error.
func (f *Fetcher) FetchFresh(ctx context.Context) []models.TokenRecord {
	var all []models.TokenRecord
	for _, src := range f.sources {
		tokens, err := src.FreshPairs(ctx, f.maxAge, f.minLiquidity)
		if err != nil {
			f.log.Warn("market source failed", zap.Error(err))
			continue
		}
		all = append(all, tokens...)
	}

	unique := dedupeByAddress(all)
	fresh := filterByAge(unique, f.maxAge, time.Now())

	f.log.Info("fresh token fetch complete",
		zap.Int("raw", len(all)),
		zap.Int("unique", len(unique)),
		zap.Int("fresh", len(fresh)))
	return fresh
}

func dedupeByAddress(tokens []models.TokenRecord) []models.TokenRecord {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]models.TokenRecord, 0, len(tokens))
	for _, token := range tokens {
		key := token.AddressKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, token)
	}
	return out
}

func filterByAge(tokens []models.TokenRecord, maxAge time.Duration, now time.Time) []models.TokenRecord {
	out := make([]models.TokenRecord, 0, len(tokens))
	for _, token := range tokens {
		if token.AgeHours(now) <= maxAge.Hours() {
			out = append(out, token)
		}
	}
	return out
}
