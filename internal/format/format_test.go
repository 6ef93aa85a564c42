package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alphafinders/teabot/internal/models"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "4.20e-03", Number(0.0042))
	assert.Equal(t, "0.4200", Number(0.42))
	assert.Equal(t, "42.00", Number(42))
	assert.Equal(t, "4.20K", Number(4200))
	assert.Equal(t, "4.20M", Number(4200000))
	assert.Equal(t, "4.20B", Number(4200000000))
}

func TestPriceChange(t *testing.T) {
	assert.Equal(t, "0%", PriceChange(0))
	assert.Equal(t, "📈 +12.50%", PriceChange(12.5))
	assert.Equal(t, "📉 -33.33%", PriceChange(-33.33))
}

func TestTokenAge(t *testing.T) {
	now := time.Now()

	minutes := models.TokenRecord{PairCreatedAt: now.Add(-25 * time.Minute)}
	assert.Equal(t, "25m", TokenAge(&minutes, now))

	hours := models.TokenRecord{PairCreatedAt: now.Add(-150 * time.Minute)}
	assert.Equal(t, "2h 30m", TokenAge(&hours, now))

	days := models.TokenRecord{PairCreatedAt: now.Add(-50 * time.Hour)}
	assert.Equal(t, "2d 2h", TokenAge(&days, now))

	unknown := models.TokenRecord{}
	assert.Equal(t, "Unknown", TokenAge(&unknown, now))
}

func TestTokenReport(t *testing.T) {
	now := time.Now()
	token := models.TokenRecord{
		ContractAddress:     "0xaaa",
		Symbol:              "TEA",
		Name:                "Tea Token",
		DexID:               "velodrome",
		PriceUSD:            0.42,
		Liquidity:           models.Liquidity{USD: 15000},
		Volume:              models.VolumeWindows{H24: 3000},
		PriceChange:         models.PriceChangeWindows{H24: 12.5},
		Txns:                models.TxnWindows{H24: models.TxnCount{Buys: 40, Sells: 22}},
		MarketCap:           120000,
		PairCreatedAt:       now.Add(-2 * time.Hour),
		SafetyScore:         85,
		DegenScore:          7.5,
		InvestmentPotential: "🚀 HIGH",
		AIRecommendation:    "Looks strong.",
	}

	report := TokenReport(&token, 0, now)

	assert.Contains(t, report, "*Token #1*")
	assert.Contains(t, report, "🫖 *TEA* | Tea Token")
	assert.Contains(t, report, "`0xaaa`")
	assert.Contains(t, report, "*Degen Score:* 7.5/10")
	assert.Contains(t, report, "*Safety:* 85/100")
	assert.Contains(t, report, "*Liquidity:* $15.00K")
	assert.Contains(t, report, "📈 +12.50%")
	assert.Contains(t, report, "🤖 *AI Analysis:*")
	assert.Contains(t, report, "Looks strong.")
}

func TestTokenReportWithoutAI(t *testing.T) {
	token := models.TokenRecord{ContractAddress: "0xaaa", Symbol: "TEA"}

	report := TokenReport(&token, 2, time.Now())

	assert.Contains(t, report, "*Token #3*")
	assert.NotContains(t, report, "AI Analysis")
}

func TestAnalysisReport(t *testing.T) {
	analysis := models.ContractAnalysis{
		ContractAddress: "0xaaa",
		IsValid:         true,
		IsHoneypot:      true,
		CanBuy:          true,
		CanSell:         false,
		BuyTax:          5,
		SellTax:         95,
		HasLiquidity:    true,
		LiquidityUSD:    2500,
		RiskScore:       10,
		RiskLevel:       models.RiskRisky,
		Warnings:        []string{"Contract may have blacklist functionality"},
		Recommendations: []string{"Contract not verified - unlikely to be teaRank eligible"},
	}

	report := AnalysisReport(&analysis)

	assert.Contains(t, report, "`0xaaa`")
	assert.Contains(t, report, "*Risk Level:* RISKY")
	assert.Contains(t, report, "*Risk Score:* 10/10")
	assert.Contains(t, report, "*Honeypot:* YES - AVOID!")
	assert.Contains(t, report, "*Can Sell:* No")
	assert.Contains(t, report, "*Sell Tax:* 95%")
	assert.Contains(t, report, "*Amount:* $2.50K")
	assert.Contains(t, report, "⚠️ *WARNINGS:*")
	assert.Contains(t, report, "💡 *RECOMMENDATIONS:*")
}

func TestWatchlistView(t *testing.T) {
	entries := []models.WatchlistEntry{
		{ContractAddress: "0xaaa", Symbol: "TEA"},
		{ContractAddress: "0xbbb", Symbol: "LEAF"},
	}

	view := WatchlistView(entries)

	assert.Contains(t, view, "(2 tokens)")
	assert.Contains(t, view, "1. TEA")
	assert.Contains(t, view, "2. LEAF")
	assert.Contains(t, view, "`0xbbb`")
}
