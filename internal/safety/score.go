package safety

import "github.com/alphafinders/teabot/internal/models"

// SafetyScore grades a token 0-100 from its market data and honeypot check.
// Higher is safer. Adjacent liquidity and volume penalties stack.
func SafetyScore(token *models.TokenRecord, hp HoneypotResult) int {
	score := 100

	if hp.IsHoneypot {
		score -= 50
	}
	if !hp.CanSell {
		score -= 30
	}

	if token.Liquidity.USD < 500 {
		score -= 20
	}
	if token.Liquidity.USD < 1000 {
		score -= 10
	}

	if token.Volume.H24 < 100 {
		score -= 15
	}
	if token.Volume.H24 < 1000 {
		score -= 10
	}

	if token.TotalTxns24h() < 10 {
		score -= 15
	}

	if hp.BuyTax > 10 {
		score -= 10
	}
	if hp.SellTax > 10 {
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
