package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/format"
	"github.com/alphafinders/teabot/internal/session"
)

const (
	opFetchingTokens    = "fetching_tokens"
	opAnalyzingContract = "analyzing_contract"
)

func fetchStatusText(done int) string {
	steps := []string{
		"Scanning TEA blockchain...",
		"Fetching from Velodrome & DexScreener...",
		"Running security analysis...",
		"AI risk assessment...",
	}

	text := "🔄 *Fetching Fresh TEA Protocol Tokens...*\n\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"
	for i, step := range steps {
		mark := "⏳"
		if i < done {
			mark = "✅"
		}
		text += fmt.Sprintf("%s Step %d: %s\n", mark, i+1, step)
	}
	text += "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\nThis may take 30-60 seconds..."
	return text
}

// handleFreshTokens runs the fetch → filter → score pipeline, editing a
// status message between steps and cancelling cooperatively: every externally
// visible action is preceded by a context check.
func (b *Bot) handleFreshTokens(ctx context.Context, chatID, userID int64) {
	opCtx, release, err := b.sessions.Begin(ctx, userID, opFetchingTokens)
	if err != nil {
		if errors.Is(err, session.ErrBusy) {
			b.sendWithMenu(chatID, busyMessage)
		}
		return
	}
	defer release()

	status, err := b.send(chatID, fetchStatusText(0), nil)
	if err != nil {
		b.sendWithMenu(chatID, "⚠️ Error fetching tokens. Try again later.")
		return
	}

	if opCtx.Err() != nil {
		return
	}
	b.edit(chatID, status.MessageID, fetchStatusText(1))

	tokens := b.fetcher.FetchFresh(opCtx)
	if opCtx.Err() != nil {
		return
	}
	b.edit(chatID, status.MessageID, fetchStatusText(2))

	tokens = b.filter.FilterSafe(opCtx, tokens)
	if opCtx.Err() != nil {
		return
	}
	b.edit(chatID, status.MessageID, fetchStatusText(3))

	if max := b.cfg.MaxTokensPerScan; max > 0 && len(tokens) > max {
		tokens = tokens[:max]
	}

	tokens = b.scorer.ScoreTokens(opCtx, tokens)
	if opCtx.Err() != nil {
		return
	}

	b.delete(chatID, status.MessageID)

	if len(tokens) == 0 {
		b.sendWithMenu(chatID, "❌ No safe tokens found on TEA Protocol in the last 24h.")
		return
	}

	header := fmt.Sprintf("🎉 *Fresh TEA Token Analysis Complete!*\n\nFound %d promising tokens on TEA Protocol:\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━", len(tokens))
	if _, err := b.send(chatID, header, nil); err != nil {
		return
	}

	b.sessions.SetLastTokens(userID, tokens)
	b.reportTokens(opCtx, chatID, tokens)

	if opCtx.Err() != nil {
		return
	}
	b.sendWithMenu(chatID, "✅ *Analysis Complete!*\n\nUse the buttons above to interact with tokens.")
}

func analyzeStatusText(address string) string {
	return fmt.Sprintf(`
🔍 *Analyzing TEA Protocol Contract...*

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
🔗 Contract: `+"`%s`"+`
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

⏳ Checking honeypot status...
⏳ Analyzing contract code...
⏳ Verifying teaRank eligibility...
⏳ Calculating risk score...

This may take 15-30 seconds...`, address)
}

// handleAnalyze runs the deep single-contract analysis.
func (b *Bot) handleAnalyze(ctx context.Context, chatID, userID int64, address string) {
	if address == "" {
		b.sendWithMenu(chatID, "❌ Please provide a valid contract address.")
		return
	}

	opCtx, release, err := b.sessions.Begin(ctx, userID, opAnalyzingContract)
	if err != nil {
		if errors.Is(err, session.ErrBusy) {
			b.sendWithMenu(chatID, busyMessage)
		}
		return
	}
	defer release()

	status, err := b.send(chatID, analyzeStatusText(address), nil)
	if err != nil {
		b.sendWithMenu(chatID, "⚠️ Failed to analyze contract. Make sure the address is correct.")
		return
	}

	analysis := b.analyzer.Analyze(opCtx, address)
	if opCtx.Err() != nil {
		return
	}

	report := format.AnalysisReport(&analysis)

	// When the token trades somewhere, extend the report with market-side
	// insight (degen score, buy pressure, momentum, AI commentary).
	if analysis.IsValid {
		if token, err := b.market.Token(opCtx, address); err == nil && token != nil {
			insight := b.scorer.AnalyzeSingle(opCtx, token)
			report += format.InsightSection(&insight)
		} else if err != nil {
			b.log.Warn("market lookup failed", zap.String("address", address), zap.Error(err))
		}
	}

	if opCtx.Err() != nil {
		return
	}
	b.delete(chatID, status.MessageID)

	keyboard := tokenActionKeyboard(address)
	if _, err := b.send(chatID, report, &keyboard); err != nil {
		b.sendWithMenu(chatID, "⚠️ Failed to analyze contract. Make sure the address is correct.")
	}
}
