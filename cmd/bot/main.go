package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alphafinders/teabot/internal/analyzer"
	"github.com/alphafinders/teabot/internal/chain"
	"github.com/alphafinders/teabot/internal/config"
	"github.com/alphafinders/teabot/internal/market"
	"github.com/alphafinders/teabot/internal/safety"
	"github.com/alphafinders/teabot/internal/scoring"
	"github.com/alphafinders/teabot/internal/session"
	"github.com/alphafinders/teabot/internal/telegram"
	"github.com/alphafinders/teabot/internal/watchlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Alpha Finders bot starting",
		zap.String("instance", uuid.NewString()),
		zap.String("rpc", cfg.OptimismRPCURL),
		zap.Bool("aiEnabled", cfg.GroqAPIKey != ""))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.Dial(ctx, cfg.OptimismRPCURL)
	if err != nil {
		logger.Fatal("Failed to connect to Optimism RPC", zap.Error(err))
	}
	defer chainClient.Close()

	dexScreener := market.NewDexScreenerClient(cfg.HTTPTimeout, logger)
	velodrome := market.NewVelodromeClient(cfg.HTTPTimeout, logger)
	fetcher := market.NewFetcher(
		[]market.PairSource{dexScreener, velodrome},
		cfg.MaxTokenAge, cfg.MinLiquidityUSD, logger)

	filterParams := safety.DefaultFilterParams()
	filterParams.MinLiquidityUSD = cfg.MinLiquidityUSD
	filter := safety.NewFilter(chainClient, filterParams, logger)

	honeypot := safety.NewHoneypotClient(cfg.HTTPTimeout, logger)
	etherscan := analyzer.NewEtherscanClient(cfg.EtherscanAPIKey, cfg.HTTPTimeout, logger)
	contractAnalyzer := analyzer.New(chainClient, honeypot, dexScreener, etherscan, logger)

	groq := scoring.NewGroqClient(cfg.GroqAPIKey, cfg.HTTPTimeout, logger)
	var ai scoring.Recommender
	if groq != nil {
		ai = groq
	}
	scorer := scoring.NewEngine(ai, logger)

	bot, err := telegram.NewBot(cfg, telegram.Deps{
		Fetcher:    fetcher,
		Filter:     filter,
		Scorer:     scorer,
		Analyzer:   contractAnalyzer,
		Market:     dexScreener,
		Watchlists: watchlist.NewStore(logger),
		Sessions:   session.NewStore(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create Telegram bot", zap.Error(err))
	}

	if err := bot.Run(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Shutting down...")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
