// Package telegram runs the chat front-end: it receives commands and
// callback actions, sequences the fetch → filter → score pipeline, and
// delivers the formatted reports.
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alphafinders/teabot/internal/analyzer"
	"github.com/alphafinders/teabot/internal/config"
	"github.com/alphafinders/teabot/internal/format"
	"github.com/alphafinders/teabot/internal/market"
	"github.com/alphafinders/teabot/internal/models"
	"github.com/alphafinders/teabot/internal/safety"
	"github.com/alphafinders/teabot/internal/scoring"
	"github.com/alphafinders/teabot/internal/session"
	"github.com/alphafinders/teabot/internal/watchlist"
)

// Bot wires the pipeline components behind the Telegram transport.
type Bot struct {
	api        *tgbotapi.BotAPI
	cfg        *config.Config
	fetcher    *market.Fetcher
	filter     *safety.Filter
	scorer     *scoring.Engine
	analyzer   *analyzer.Analyzer
	market     analyzer.MarketSource
	watchlists *watchlist.Store
	sessions   *session.Store
	// pacing policy for sequential report sends
	limiter *rate.Limiter
	log     *zap.Logger
}

// Deps collects the Bot's collaborators.
type Deps struct {
	Fetcher    *market.Fetcher
	Filter     *safety.Filter
	Scorer     *scoring.Engine
	Analyzer   *analyzer.Analyzer
	Market     analyzer.MarketSource
	Watchlists *watchlist.Store
	Sessions   *session.Store
}

// NewBot creates the bot and authenticates against the Telegram API.
func NewBot(cfg *config.Config, deps Deps, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	msgRate := cfg.MessageRate
	if msgRate <= 0 {
		msgRate = 2
	}

	return &Bot{
		api:        api,
		cfg:        cfg,
		fetcher:    deps.Fetcher,
		filter:     deps.Filter,
		scorer:     deps.Scorer,
		analyzer:   deps.Analyzer,
		market:     deps.Market,
		watchlists: deps.Watchlists,
		sessions:   deps.Sessions,
		limiter:    rate.NewLimiter(rate.Limit(msgRate), 1),
		log:        log,
	}, nil
}

// Run processes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot running", zap.String("username", b.api.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			switch {
			case update.CallbackQuery != nil:
				go b.handleCallback(ctx, update.CallbackQuery)
			case update.Message != nil:
				go b.handleMessage(ctx, update.Message)
			}
		}
	}
}

// send delivers a Markdown message, logging failures.
func (b *Bot) send(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	sent, err := b.api.Send(msg)
	if err != nil {
		b.log.Warn("send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
	return sent, err
}

func (b *Bot) sendWithMenu(chatID int64, text string) {
	menu := mainMenuKeyboard()
	_, _ = b.send(chatID, text, &menu)
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(edit); err != nil {
		b.log.Warn("edit failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (b *Bot) delete(chatID int64, messageID int) {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.log.Warn("delete failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// pace blocks per the message pacing policy, honoring cancellation.
func (b *Bot) pace(ctx context.Context) error {
	return b.limiter.Wait(ctx)
}

func firstName(msg *tgbotapi.Message) string {
	if msg.From != nil && msg.From.FirstName != "" {
		return msg.From.FirstName
	}
	return "Trader"
}

func watchlistKey(userID int64) string {
	return fmt.Sprintf("%d", userID)
}

// reportTokens sends one paced report per token, observing cancellation
// before each send.
func (b *Bot) reportTokens(ctx context.Context, chatID int64, tokens []models.TokenRecord) {
	now := time.Now()
	for i := range tokens {
		if err := b.pace(ctx); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		keyboard := tokenActionKeyboard(tokens[i].ContractAddress)
		if _, err := b.send(chatID, format.TokenReport(&tokens[i], i, now), &keyboard); err != nil {
			b.log.Warn("token report failed", zap.String("symbol", tokens[i].Symbol), zap.Error(err))
		}
	}
}
