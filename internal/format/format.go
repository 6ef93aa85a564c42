// Package format renders tokens, contract analyses, and watchlists as
// Telegram Markdown reports.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/alphafinders/teabot/internal/models"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Number formats an amount with K/M/B suffixes, exponential notation for
// sub-cent values, and more decimals under a dollar.
func Number(num float64) string {
	switch {
	case num == 0:
		return "0"
	case num < 0.01:
		return fmt.Sprintf("%.2e", num)
	case num < 1:
		return fmt.Sprintf("%.4f", num)
	case num < 1000:
		return fmt.Sprintf("%.2f", num)
	case num < 1000000:
		return fmt.Sprintf("%.2fK", num/1000)
	case num < 1000000000:
		return fmt.Sprintf("%.2fM", num/1000000)
	default:
		return fmt.Sprintf("%.2fB", num/1000000000)
	}
}

// PriceChange renders a percentage with a direction arrow and sign.
func PriceChange(change float64) string {
	if change == 0 {
		return "0%"
	}
	emoji, sign := "📉", ""
	if change > 0 {
		emoji, sign = "📈", "+"
	}
	return fmt.Sprintf("%s %s%.2f%%", emoji, sign, change)
}

// TokenAge renders the pair age as minutes, hours, or days.
func TokenAge(token *models.TokenRecord, now time.Time) string {
	if token.PairCreatedAt.IsZero() {
		return "Unknown"
	}

	diff := now.Sub(token.PairCreatedAt)
	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dd %dh", hours/24, hours%24)
	}
}

// safetyEmoji grades the safety score into a traffic-light indicator.
func safetyEmoji(safetyScore int) string {
	switch {
	case safetyScore >= 80:
		return "🟢"
	case safetyScore >= 60:
		return "🟡"
	case safetyScore >= 40:
		return "🟠"
	default:
		return "🔴"
	}
}

// RiskLevelEmoji maps a risk level to its indicator.
func RiskLevelEmoji(level models.RiskLevel) string {
	switch level {
	case models.RiskSafe:
		return "🟢"
	case models.RiskCaution:
		return "🟡"
	case models.RiskRisky:
		return "🔴"
	default:
		return "⚪"
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// TokenReport renders the fixed-layout report for one discovered token.
// index is the zero-based position in the batch.
func TokenReport(token *models.TokenRecord, index int, now time.Time) string {
	var sb strings.Builder

	risk := safetyEmoji(token.SafetyScore)
	dex := token.DexID
	if dex == "" {
		dex = "Velodrome"
	}

	fmt.Fprintf(&sb, "\n%s\n%s *Token #%d* %s\n%s\n\n", divider, risk, index+1, risk, divider)
	fmt.Fprintf(&sb, "🫖 *%s* | %s\n", token.Symbol, orNA(token.Name))
	fmt.Fprintf(&sb, "🔗 `%s`\n\n", token.ContractAddress)
	fmt.Fprintf(&sb, "⏰ *Age:* %s\n", TokenAge(token, now))
	sb.WriteString("🌐 *Chain:* TEA Protocol (Optimism)\n")
	fmt.Fprintf(&sb, "💱 *DEX:* %s\n\n", dex)
	fmt.Fprintf(&sb, "💰 *Price:* $%s\n", Number(token.PriceUSD))
	fmt.Fprintf(&sb, "📊 *Market Cap:* $%s\n", Number(token.MarketCap))
	fmt.Fprintf(&sb, "💧 *Liquidity:* $%s\n\n", Number(token.Liquidity.USD))
	fmt.Fprintf(&sb, "📈 *Volume 24h:* $%s\n", Number(token.Volume.H24))
	fmt.Fprintf(&sb, "📉 *Price Change 24h:* %s\n\n", PriceChange(token.PriceChange.H24))
	sb.WriteString("🔄 *Transactions 24h:*\n")
	fmt.Fprintf(&sb, "   • Buys: %d\n", token.Txns.H24.Buys)
	fmt.Fprintf(&sb, "   • Sells: %d\n", token.Txns.H24.Sells)
	fmt.Fprintf(&sb, "   • Total: %d\n\n", token.TotalTxns24h())
	fmt.Fprintf(&sb, "🎯 *Degen Score:* %.1f/10\n", token.DegenScore)
	fmt.Fprintf(&sb, "🚀 *Potential:* %s\n", orNA(token.InvestmentPotential))
	fmt.Fprintf(&sb, "🛡️ *Safety:* %d/100\n", token.SafetyScore)

	if token.AIRecommendation != "" {
		fmt.Fprintf(&sb, "\n🤖 *AI Analysis:*\n_%s_\n", token.AIRecommendation)
	}

	sb.WriteString("\n" + divider)
	return sb.String()
}

// AnalysisReport renders the fixed-layout deep contract analysis report.
func AnalysisReport(analysis *models.ContractAnalysis) string {
	var sb strings.Builder

	risk := RiskLevelEmoji(analysis.RiskLevel)

	fmt.Fprintf(&sb, "\n%s\n🔍 *DEEP CONTRACT ANALYSIS* 🔍\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "🔗 *Contract:* `%s`\n", analysis.ContractAddress)
	sb.WriteString("🌐 *Chain:* TEA Protocol (Optimism)\n\n")
	fmt.Fprintf(&sb, "%s *Risk Level:* %s\n", risk, analysis.RiskLevel)
	fmt.Fprintf(&sb, "📊 *Risk Score:* %d/10\n\n", analysis.RiskScore)

	fmt.Fprintf(&sb, "%s\n🛡️ *SECURITY ANALYSIS*\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "%s *Honeypot:* %s\n",
		yesNo(analysis.IsHoneypot, "🚨", "✅"),
		yesNo(analysis.IsHoneypot, "YES - AVOID!", "No"))
	fmt.Fprintf(&sb, "%s *Can Buy:* %s\n",
		yesNo(analysis.CanBuy, "✅", "❌"), yesNo(analysis.CanBuy, "Yes", "No"))
	fmt.Fprintf(&sb, "%s *Can Sell:* %s\n\n",
		yesNo(analysis.CanSell, "✅", "❌"), yesNo(analysis.CanSell, "Yes", "No"))
	fmt.Fprintf(&sb, "💵 *Buy Tax:* %g%%\n", analysis.BuyTax)
	fmt.Fprintf(&sb, "💵 *Sell Tax:* %g%%\n\n", analysis.SellTax)

	fmt.Fprintf(&sb, "%s\n📋 *CONTRACT FEATURES*\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "%s *Mint Function:* %s\n",
		yesNo(analysis.HasMintFunction, "⚠️", "✅"),
		yesNo(analysis.HasMintFunction, "Yes", "No"))
	fmt.Fprintf(&sb, "%s *Blacklist:* %s\n",
		yesNo(analysis.HasBlacklist, "⚠️", "✅"),
		yesNo(analysis.HasBlacklist, "Yes", "No"))
	fmt.Fprintf(&sb, "%s *Ownership:* %s\n\n",
		yesNo(analysis.OwnershipRenounced, "✅", "⚠️"),
		yesNo(analysis.OwnershipRenounced, "Renounced", "Active"))

	fmt.Fprintf(&sb, "%s\n💧 *LIQUIDITY*\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "%s *Has Liquidity:* %s\n",
		yesNo(analysis.HasLiquidity, "✅", "❌"),
		yesNo(analysis.HasLiquidity, "Yes", "No"))
	fmt.Fprintf(&sb, "%s *Liquidity Locked:* %s\n",
		yesNo(analysis.LiquidityLocked, "✅", "⚠️"),
		yesNo(analysis.LiquidityLocked, "Yes", "Unknown"))
	if analysis.LiquidityUSD > 0 {
		fmt.Fprintf(&sb, "💰 *Amount:* $%s\n", Number(analysis.LiquidityUSD))
	}

	fmt.Fprintf(&sb, "\n%s\n🫖 *TEA PROTOCOL*\n%s\n\n", divider, divider)
	fmt.Fprintf(&sb, "%s *teaRank Eligible:* %s\n",
		yesNo(analysis.TeaRankEligible, "✅", "❌"),
		yesNo(analysis.TeaRankEligible, "Potentially Yes", "No"))

	if len(analysis.Warnings) > 0 {
		sb.WriteString("\n⚠️ *WARNINGS:*\n")
		for _, warning := range analysis.Warnings {
			fmt.Fprintf(&sb, "   • %s\n", warning)
		}
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("\n💡 *RECOMMENDATIONS:*\n")
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(&sb, "   • %s\n", rec)
		}
	}

	sb.WriteString("\n" + divider)
	return sb.String()
}

// WatchlistView renders the user's watchlist entries.
func WatchlistView(entries []models.WatchlistEntry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "⭐ *Your TEA Watchlist* (%d tokens)\n\n", len(entries))
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%d. %s\n   `%s`\n\n", i+1, entry.Symbol, entry.ContractAddress)
	}
	sb.WriteString("💡 Send any contract address for detailed analysis.")
	return sb.String()
}
