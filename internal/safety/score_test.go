package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphafinders/teabot/internal/models"
)

func TestSafetyScoreHealthyToken(t *testing.T) {
	token := models.TokenRecord{
		Liquidity: models.Liquidity{USD: 50000},
		Volume:    models.VolumeWindows{H24: 20000},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 80, Sells: 40}},
	}
	hp := HoneypotResult{CanBuy: true, CanSell: true}

	assert.Equal(t, 100, SafetyScore(&token, hp))
}

func TestSafetyScoreHoneypotPenalties(t *testing.T) {
	token := models.TokenRecord{
		Liquidity: models.Liquidity{USD: 50000},
		Volume:    models.VolumeWindows{H24: 20000},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 80, Sells: 40}},
	}
	hp := HoneypotResult{IsHoneypot: true, CanBuy: false, CanSell: false}

	// honeypot -50, cannot sell -30
	assert.Equal(t, 20, SafetyScore(&token, hp))
}

func TestSafetyScoreLiquidityPenaltiesStack(t *testing.T) {
	token := models.TokenRecord{
		Liquidity: models.Liquidity{USD: 300},
		Volume:    models.VolumeWindows{H24: 20000},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 80, Sells: 40}},
	}
	hp := HoneypotResult{CanBuy: true, CanSell: true}

	// under 500 and under 1000 both apply
	assert.Equal(t, 70, SafetyScore(&token, hp))
}

func TestSafetyScoreClampedAtZero(t *testing.T) {
	token := models.TokenRecord{
		Liquidity: models.Liquidity{USD: 50},
		Volume:    models.VolumeWindows{H24: 10},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 1, Sells: 1}},
	}
	hp := HoneypotResult{IsHoneypot: true, BuyTax: 25, SellTax: 25}

	assert.Equal(t, 0, SafetyScore(&token, hp))
}

func TestSuspiciousPatternsFlags(t *testing.T) {
	token := models.TokenRecord{
		Symbol:    "T$EA",
		BuyTax:    30,
		MarketCap: 10000000,
		Liquidity: models.Liquidity{USD: 1000},
		Volume:    models.VolumeWindows{H24: 0},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 0}},
	}

	flags := SuspiciousPatterns(&token)
	assert.Len(t, flags, 4)
	assert.True(t, IsSuspicious(&token))
}

func TestSuspiciousPatternsCleanToken(t *testing.T) {
	token := models.TokenRecord{
		Symbol:    "TEA",
		MarketCap: 100000,
		Liquidity: models.Liquidity{USD: 20000},
		Volume:    models.VolumeWindows{H24: 5000},
		Txns:      models.TxnWindows{H24: models.TxnCount{Buys: 40, Sells: 30}},
	}

	assert.Empty(t, SuspiciousPatterns(&token))
	assert.False(t, IsSuspicious(&token))
}
