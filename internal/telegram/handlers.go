package telegram

import (
	"context"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/format"
)

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	chatID := message.Chat.ID
	userID := message.From.ID

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.sendWithMenu(chatID, welcomeMessage(firstName(message)))
		case "stop":
			b.handleStop(chatID, userID)
		}
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	if addressPattern.MatchString(text) {
		b.handleAnalyze(ctx, chatID, userID, text)
		return
	}

	b.sendWithMenu(chatID, fallbackMessage)
}

func (b *Bot) handleStop(chatID, userID int64) {
	if operation, ok := b.sessions.Stop(userID); ok {
		b.log.Info("operation stopped",
			zap.Int64("user", userID), zap.String("operation", operation))
		b.sendWithMenu(chatID, stoppedMessage)
		return
	}
	b.sendWithMenu(chatID, nothingRunningMessage)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.From == nil {
		return
	}
	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Warn("failed to answer callback query", zap.Error(err))
		if strings.Contains(err.Error(), "query is too old") {
			b.sendWithMenu(chatID, expiredButtonMessage)
		}
		return
	}

	switch data {
	case cbFreshTokens:
		b.handleFreshTokens(ctx, chatID, userID)

	case cbAnalyzePrompt:
		b.sendWithMenu(chatID, analyzePromptMessage)

	case cbViewWatchlist:
		b.handleViewWatchlist(chatID, userID)

	case cbOverview:
		b.sendWithMenu(chatID, overviewMessage)

	case cbSettings:
		b.sendWithMenu(chatID, settingsMessage(b.cfg.MaxTokensPerScan, b.cfg.MinLiquidityUSD))

	case cbStopOperation:
		b.handleStop(chatID, userID)

	case cbHelp:
		b.sendWithMenu(chatID, helpMessage)

	default:
		switch {
		case strings.HasPrefix(data, cbDeepAnalyzePrefix):
			b.handleAnalyze(ctx, chatID, userID, strings.TrimPrefix(data, cbDeepAnalyzePrefix))
		case strings.HasPrefix(data, cbWatchlistPrefix):
			b.handleWatchlistAdd(chatID, userID, strings.TrimPrefix(data, cbWatchlistPrefix))
		}
	}
}

func (b *Bot) handleViewWatchlist(chatID, userID int64) {
	stats := b.watchlists.GetStats(watchlistKey(userID))
	if stats.Count == 0 {
		b.sendWithMenu(chatID, "⭐ *Your Watchlist*\n\n📋 You have no tokens in your watchlist.\n\nUse the \"Add to Watchlist\" button on any token to start tracking!")
		return
	}
	b.sendWithMenu(chatID, format.WatchlistView(stats.Tokens))
}

// handleWatchlistAdd resolves the address against the user's last fetched
// batch; stale callbacks (no matching token) are ignored, as the batch they
// came from is gone.
func (b *Bot) handleWatchlistAdd(chatID, userID int64, address string) {
	token, ok := b.sessions.FindToken(userID, address)
	if !ok {
		return
	}

	result := b.watchlists.Add(watchlistKey(userID), token)
	mark := "⚠️"
	if result.Success {
		mark = "✅"
	}
	b.sendWithMenu(chatID, "⭐ *Watchlist*\n\n"+mark+" "+result.Message)
}
