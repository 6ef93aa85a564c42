package telegram

import "fmt"

func welcomeMessage(userName string) string {
	return fmt.Sprintf(`
🫖 *Welcome to Alpha Finders* 🫖

Hello %s! 👋

I'm your TEA Protocol token discovery bot - finding alpha on TEA's network!

🚀 *Fresh Token Discovery*
- Real-time new token detection on TEA Protocol
- Built on Optimism Superchain
- Velodrome DEX integration
- Advanced scam filtering
- AI-powered risk assessment

🛡️ *Security Analysis*
- Smart contract verification
- Honeypot detection
- Liquidity analysis
- Trading activity verification
- teaRank eligibility check

⭐ *Personal Features*
- Token watchlist management
- Deep analysis reports
- Professional risk scoring

Choose an option below to start finding alpha on TEA Protocol:`, userName)
}

const fallbackMessage = `
👋 *Welcome to Alpha Finders!*

Finding alpha on TEA Protocol 🫖

🚀 Use the buttons below for all features
🛑 Use /stop to halt operations
❓ Use /start for the main menu

Or send me a TEA Protocol contract address!`

const helpMessage = `
🆘 *Alpha Finders Help*

*Main Features:*
- Fresh TEA token discovery (last 24h)
- Deep contract analysis
- Personal watchlist tracking
- AI-powered risk assessment

*How to Use:*
1. Click "🫖 Fresh TEA Tokens" to discover new tokens
2. Use "🛡️ Deep Analysis" for detailed security reports
3. Add tokens to "⭐ My Watchlist" for tracking
4. Check "📈 TEA Market Overview" for insights

*Risk Levels:*
🟢 SAFE - Low risk, good fundamentals
🟡 CAUTION - Medium risk, be careful
🔴 RISKY - High risk, avoid

*Commands:*
- /start - Show main menu
- /stop - Stop current operation
- Send contract address to analyze

Need more help? Visit tea.xyz`

const overviewMessage = `📊 *TEA Protocol Market Overview*

🫖 *About TEA Protocol:*
- Layer 2 blockchain built on Optimism Superchain
- Focus on open-source developer rewards
- Proof of Contribution algorithm
- teaRank-based reward distribution

🔄 *Primary DEX:*
- Velodrome Finance (Leading Optimism DEX)
- Deep liquidity pools
- Optimized for TEA ecosystem

🔍 *Alpha Finders Coverage:*
- Real-time token discovery on TEA
- Advanced scam filtering
- AI-powered risk assessment
- teaRank eligibility tracking

💡 *Tip:* Use "🫖 Fresh TEA Tokens" to discover new opportunities on TEA Protocol!`

func settingsMessage(maxTokens int, minLiquidity float64) string {
	return fmt.Sprintf(`⚙️ *Alpha Finders Settings*

🔧 *Current Configuration:*
- Network: TEA Protocol (Optimism Superchain)
- Primary DEX: Velodrome Finance
- Scam filtering: Advanced analysis
- AI analysis: Risk assessment enabled
- Data sources: DexScreener + Velodrome

📊 *Filtering Options:*
- Age limit: Last 24 hours
- Liquidity: Minimum $%.0f
- Token limit: Up to %d tokens per request

💡 *Tip:* The bot is optimized for TEA Protocol alpha discovery!`, minLiquidity, maxTokens)
}

const analyzePromptMessage = "🔍 *Token Analysis*\n\nPlease send me a TEA Protocol contract address to analyze:\n\nExample: `0x1234...5678`"

const busyMessage = "⚠️ You have another operation in progress. Use /stop to cancel it first."

const stoppedMessage = "🛑 *Operation Stopped*\n\nYour current operation has been cancelled."

const nothingRunningMessage = "ℹ️ No operations are currently running."

const expiredButtonMessage = "⏰ *Button Expired*\n\nThis button has expired. Please use /start to get a fresh menu."
