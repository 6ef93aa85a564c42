// Package scoring computes the degen score and investment-potential label
// for discovered tokens and optionally attaches an AI-written narrative.
package scoring

import (
	"math"
	"time"

	"github.com/alphafinders/teabot/internal/models"
)

// Potential labels mapped from the degen score.
const (
	PotentialVeryHigh = "🔥 VERY HIGH"
	PotentialHigh     = "🚀 HIGH"
	PotentialModerate = "⚡ MODERATE"
	PotentialLow      = "⚠️ LOW"
	PotentialVeryLow  = "🛑 VERY LOW"
)

// DegenScore grades a token 1-10 for speculative potential. The weights are
// tuned constants; the tier chains are order-sensitive.
func DegenScore(token *models.TokenRecord, now time.Time) float64 {
	score := 5.0

	age := token.AgeHours(now)
	if age < 1 {
		score += 3
	} else if age < 6 {
		score += 2
	} else if age < 12 {
		score += 1
	}

	liquidity := token.Liquidity.USD
	if liquidity > 10000 {
		score += 1.5
	} else if liquidity > 5000 {
		score += 1
	} else if liquidity > 1000 {
		score += 0.5
	} else if liquidity < 500 {
		score -= 1
	}

	volume := token.Volume.H24
	if volume > 50000 {
		score += 1.5
	} else if volume > 10000 {
		score += 1
	} else if volume > 1000 {
		score += 0.5
	} else if volume < 100 {
		score -= 1
	}

	change := token.PriceChange.H24
	if change > 50 {
		score += 1
	} else if change > 20 {
		score += 0.5
	} else if change < -20 {
		score -= 0.5
	} else if change < -50 {
		score -= 1
	}

	txns := token.TotalTxns24h()
	if txns > 100 {
		score += 1
	} else if txns > 50 {
		score += 0.5
	} else if txns < 10 {
		score -= 1
	}

	buys := float64(token.Txns.H24.Buys)
	sells := float64(token.Txns.H24.Sells)
	if buys > sells*1.5 {
		score += 1
	} else if buys < sells*0.5 {
		score -= 1
	}

	if token.SafetyScore > 0 {
		switch {
		case token.SafetyScore > 80:
			score += 1
		case token.SafetyScore > 60:
			score += 0.5
		case token.SafetyScore < 40:
			score -= 1
		case token.SafetyScore < 20:
			score -= 2
		}
	}

	if liquidity > 0 {
		ratio := volume / liquidity
		if ratio > 1 {
			score += 0.5
		} else if ratio > 0.5 {
			score += 0.25
		}
	}

	if token.MarketCap > 0 {
		if token.MarketCap < 100000 {
			score += 0.5
		} else if token.MarketCap > 10000000 {
			score -= 0.5
		}
	}

	score = math.Round(score*10) / 10
	return math.Max(1, math.Min(10, score))
}

// PotentialLabel maps a degen score to its qualitative label.
func PotentialLabel(score float64) string {
	switch {
	case score >= 8:
		return PotentialVeryHigh
	case score >= 6.5:
		return PotentialHigh
	case score >= 5:
		return PotentialModerate
	case score >= 3:
		return PotentialLow
	default:
		return PotentialVeryLow
	}
}

// BuyPressure returns the share of buys among all 24h transactions, 0-100.
// With no transactions it reports a neutral 50.
func BuyPressure(token *models.TokenRecord) int {
	total := token.TotalTxns24h()
	if total == 0 {
		return 50
	}
	return int(math.Round(float64(token.Txns.H24.Buys) / float64(total) * 100))
}

// Momentum estimates short-term momentum 0-100 from price change, volume,
// transaction activity, and buy pressure.
func Momentum(token *models.TokenRecord) int {
	momentum := 50.0

	momentum += token.PriceChange.H24 * 0.5

	if token.Volume.H24 > 10000 {
		momentum += 10
	} else if token.Volume.H24 > 1000 {
		momentum += 5
	}

	txns := token.TotalTxns24h()
	if txns > 100 {
		momentum += 10
	} else if txns > 50 {
		momentum += 5
	}

	pressure := BuyPressure(token)
	if pressure > 60 {
		momentum += 10
	} else if pressure < 40 {
		momentum -= 10
	}

	return int(math.Max(0, math.Min(100, math.Round(momentum))))
}
