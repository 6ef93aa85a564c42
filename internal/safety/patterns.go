package safety

import (
	"regexp"

	"github.com/alphafinders/teabot/internal/models"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Tuning thresholds for the suspicious-pattern heuristic. Values are tuned
// constants carried over as-is, not derived from anything.
const (
	maxTaxPercent        = 20.0
	minLiquidityMCRatio  = 0.01
	suspiciousFlagsLimit = 3
)

// SuspiciousPatterns returns the red flags detected in the token's market
// data. A token is only rejected when the count exceeds suspiciousFlagsLimit.
func SuspiciousPatterns(token *models.TokenRecord) []string {
	var flags []string

	if token.Symbol != "" && nonAlphanumeric.MatchString(token.Symbol) {
		flags = append(flags, "Symbol contains special characters")
	}

	if token.BuyTax > maxTaxPercent || token.SellTax > maxTaxPercent {
		flags = append(flags, "Very high trading tax")
	}

	if token.MarketCap > 0 && token.Liquidity.USD > 0 {
		if token.Liquidity.USD/token.MarketCap < minLiquidityMCRatio {
			flags = append(flags, "Very low liquidity vs market cap")
		}
	}

	if token.Volume.H24 == 0 && token.Txns.H24.Buys == 0 {
		flags = append(flags, "No trading activity")
	}

	return flags
}

// IsSuspicious reports whether the token trips more red flags than allowed.
func IsSuspicious(token *models.TokenRecord) bool {
	return len(SuspiciousPatterns(token)) > suspiciousFlagsLimit
}
