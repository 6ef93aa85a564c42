package format

import (
	"fmt"
	"strings"

	"github.com/alphafinders/teabot/internal/scoring"
)

// InsightSection renders the market-side insight appended to a deep
// analysis report when the token is actively traded.
func InsightSection(insight *scoring.TokenInsight) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n\n%s\n📊 *MARKET INSIGHT*\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "🎯 *Degen Score:* %.1f/10\n", insight.DegenScore)
	fmt.Fprintf(&sb, "🚀 *Potential:* %s\n", insight.InvestmentPotential)
	fmt.Fprintf(&sb, "⏰ *Age:* %.1f hours\n", insight.AgeHours)
	fmt.Fprintf(&sb, "💹 *Volume/Liquidity:* %.2f\n", insight.VolumeToLiquidity)
	fmt.Fprintf(&sb, "🟩 *Buy Pressure:* %d/100\n", insight.BuyPressure)
	fmt.Fprintf(&sb, "⚡ *Momentum:* %d/100\n", insight.Momentum)

	if insight.AIInsights != "" {
		fmt.Fprintf(&sb, "\n🤖 *AI Analysis:*\n_%s_\n", insight.AIInsights)
	}

	sb.WriteString("\n" + divider)
	return sb.String()
}
