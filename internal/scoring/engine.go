package scoring

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/models"
)

// Recommender produces narrative commentary for a token. Satisfied by
// *GroqClient; nil disables narratives.
type Recommender interface {
	Recommend(ctx context.Context, token *models.TokenRecord) (string, error)
	DetailedAnalysis(ctx context.Context, token *models.TokenRecord) (string, error)
}

// Engine scores token batches and single tokens.
type Engine struct {
	ai  Recommender
	log *zap.Logger
}

// NewEngine creates a scoring engine. ai may be nil.
func NewEngine(ai Recommender, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{ai: ai, log: log}
}

// ScoreTokens attaches degen score, potential label, and (when available) an
// AI recommendation to every token, then returns the batch sorted by degen
// score descending. Ties keep their input order. AI failures degrade to an
// empty narrative, never exclude a token.
func (e *Engine) ScoreTokens(ctx context.Context, tokens []models.TokenRecord) []models.TokenRecord {
	e.log.Info("scoring tokens", zap.Int("count", len(tokens)))
	now := time.Now()

	scored := make([]models.TokenRecord, len(tokens))
	for i := range tokens {
		token := tokens[i]
		token.DegenScore = DegenScore(&token, now)
		token.InvestmentPotential = PotentialLabel(token.DegenScore)

		if e.ai != nil {
			rec, err := e.ai.Recommend(ctx, &token)
			if err != nil {
				e.log.Warn("ai recommendation failed",
					zap.String("symbol", token.Symbol), zap.Error(err))
			} else {
				token.AIRecommendation = rec
			}
		}

		scored[i] = token
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].DegenScore > scored[j].DegenScore
	})

	e.log.Info("scoring complete", zap.Int("count", len(scored)))
	return scored
}

// TokenInsight is the extended single-token view used by deep analysis.
type TokenInsight struct {
	DegenScore          float64
	InvestmentPotential string
	AIInsights          string
	AgeHours            float64
	VolumeToLiquidity   float64
	BuyPressure         int
	Momentum            int
}

// AnalyzeSingle computes the extended metrics for one token, with the
// detailed AI commentary when available.
func (e *Engine) AnalyzeSingle(ctx context.Context, token *models.TokenRecord) TokenInsight {
	now := time.Now()
	score := DegenScore(token, now)

	insight := TokenInsight{
		DegenScore:          score,
		InvestmentPotential: PotentialLabel(score),
		AgeHours:            token.AgeHours(now),
		BuyPressure:         BuyPressure(token),
		Momentum:            Momentum(token),
	}
	if token.Liquidity.USD > 0 {
		insight.VolumeToLiquidity = token.Volume.H24 / token.Liquidity.USD
	}

	if e.ai != nil {
		text, err := e.ai.DetailedAnalysis(ctx, token)
		if err != nil {
			e.log.Warn("detailed ai analysis failed",
				zap.String("symbol", token.Symbol), zap.Error(err))
		} else {
			insight.AIInsights = text
		}
	}

	return insight
}
