package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback tags routed by handleCallback. The two prefixed tags carry a
// contract address after the prefix.
const (
	cbFreshTokens   = "fresh_tokens"
	cbAnalyzePrompt = "analyze_prompt"
	cbViewWatchlist = "view_watchlist"
	cbOverview      = "overview"
	cbSettings      = "settings"
	cbStopOperation = "stop_operation"
	cbHelp          = "help"

	cbDeepAnalyzePrefix = "deep_analyze_"
	cbWatchlistPrefix   = "watchlist_"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🫖 Fresh TEA Tokens", cbFreshTokens),
			tgbotapi.NewInlineKeyboardButtonData("🔍 Analyze Token", cbAnalyzePrompt),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 TEA Market Overview", cbOverview),
			tgbotapi.NewInlineKeyboardButtonData("⭐ My Watchlist", cbViewWatchlist),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", cbSettings),
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", cbHelp),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛑 Stop Operations", cbStopOperation),
		),
	)
}

func tokenActionKeyboard(contractAddress string) tgbotapi.InlineKeyboardMarkup {
	velodromeURL := "https://velodrome.finance/swap?from=eth&to=" + contractAddress
	dexscreenerURL := "https://dexscreener.com/optimism/" + contractAddress
	explorerURL := "https://optimistic.etherscan.io/address/" + contractAddress

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔄 Trade on Velodrome", velodromeURL),
			tgbotapi.NewInlineKeyboardButtonURL("📈 DexScreener", dexscreenerURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔍 Explorer", explorerURL),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Add to Watchlist", cbWatchlistPrefix+contractAddress),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛡️ Deep Analysis", cbDeepAnalyzePrefix+contractAddress),
		),
	)
}
