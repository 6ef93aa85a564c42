// Package analyzer performs deep risk analysis of a single contract address:
// honeypot detection, bytecode inspection, ownership checks, liquidity
// lookup, and teaRank eligibility, aggregated into a 0-10 risk score.
package analyzer

import (
	"context"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/alphafinders/teabot/internal/chain"
	"github.com/alphafinders/teabot/internal/models"
	"github.com/alphafinders/teabot/internal/safety"
)

// ChainReader provides the on-chain reads the analyzer needs.
type ChainReader interface {
	safety.CodeReader
	Owner(ctx context.Context, address string) (ethcommon.Address, error)
}

// HoneypotChecker is the detailed honeypot detection service.
type HoneypotChecker interface {
	Check(ctx context.Context, address string) (safety.HoneypotResult, error)
}

// MarketSource looks up current market data for one address.
type MarketSource interface {
	Token(ctx context.Context, address string) (*models.TokenRecord, error)
}

// SourceVerifier checks whether contract source is verified on the explorer.
type SourceVerifier interface {
	IsSourceVerified(ctx context.Context, address string) (bool, error)
}

// Analyzer runs the deep contract analysis pipeline.
type Analyzer struct {
	chain    ChainReader
	honeypot HoneypotChecker
	market   MarketSource
	verifier SourceVerifier
	log      *zap.Logger
}

// New creates an analyzer from its collaborators.
func New(chainReader ChainReader, honeypot HoneypotChecker, market MarketSource, verifier SourceVerifier, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		chain:    chainReader,
		honeypot: honeypot,
		market:   market,
		verifier: verifier,
		log:      log,
	}
}

// Analyze inspects the contract at address and returns the aggregated
// analysis. It never returns an error: failures are encoded in the result.
func (a *Analyzer) Analyze(ctx context.Context, address string) (analysis models.ContractAnalysis) {
	a.log.Info("analyzing contract", zap.String("address", address))

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis panicked", zap.Any("cause", r))
			analysis = models.ContractAnalysis{
				ContractAddress: address,
				IsValid:         false,
				RiskLevel:       models.RiskUnknown,
				Warnings:        []string{"Failed to analyze contract"},
				Error:           "analysis failed",
			}
		}
	}()

	analysis = models.ContractAnalysis{
		ContractAddress: address,
		CanBuy:          true,
		CanSell:         true,
		RiskLevel:       models.RiskUnknown,
	}

	if !chain.IsAddress(address) {
		analysis.Warnings = append(analysis.Warnings, "Invalid contract address")
		return analysis
	}

	code, err := a.chain.Bytecode(ctx, address)
	if err != nil {
		a.log.Warn("bytecode fetch failed", zap.Error(err))
		return models.ContractAnalysis{
			ContractAddress: address,
			IsValid:         false,
			RiskLevel:       models.RiskUnknown,
			Warnings:        []string{"Failed to analyze contract"},
			Error:           err.Error(),
		}
	}
	if code == "0x" || code == "0x0" {
		analysis.Warnings = append(analysis.Warnings, "No contract code found - not a valid token")
		return analysis
	}

	analysis.IsValid = true

	a.applyHoneypotCheck(ctx, &analysis)
	a.inspectBytecode(ctx, code, &analysis)
	a.lookupLiquidity(ctx, &analysis)
	a.checkTeaRankEligibility(ctx, &analysis)

	analysis.RiskScore = riskScore(&analysis)
	analysis.RiskLevel = models.RiskLevelForScore(analysis.RiskScore)

	if len(analysis.Warnings) == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "No major red flags detected")
	}
	if analysis.LiquidityLocked {
		analysis.Recommendations = append(analysis.Recommendations, "Liquidity is locked - positive sign")
	}
	if analysis.TeaRankEligible {
		analysis.Recommendations = append(analysis.Recommendations, "Potentially eligible for teaRank rewards")
	}

	a.log.Info("analysis complete",
		zap.String("address", address),
		zap.String("riskLevel", string(analysis.RiskLevel)),
		zap.Int("riskScore", analysis.RiskScore))
	return analysis
}

// applyHoneypotCheck prefers the detection service and falls back to the
// local bytecode heuristic when the service is unavailable.
func (a *Analyzer) applyHoneypotCheck(ctx context.Context, analysis *models.ContractAnalysis) {
	hp, err := a.honeypot.Check(ctx, analysis.ContractAddress)
	if err != nil {
		a.log.Warn("honeypot API unavailable, using local check", zap.Error(err))
		hp = safety.QuickHoneypotCheck(ctx, a.chain, analysis.ContractAddress)
	}

	analysis.IsHoneypot = hp.IsHoneypot
	analysis.CanBuy = hp.CanBuy
	analysis.CanSell = hp.CanSell
	analysis.BuyTax = hp.BuyTax
	analysis.SellTax = hp.SellTax
}

// inspectBytecode scans the deployed code for mint, blacklist, and owner
// markers, then checks whether ownership has been renounced on-chain.
func (a *Analyzer) inspectBytecode(ctx context.Context, code string, analysis *models.ContractAnalysis) {
	lowered := strings.ToLower(code)

	if strings.Contains(lowered, "mint(") || strings.Contains(lowered, "_mint") {
		analysis.HasMintFunction = true
		analysis.Warnings = append(analysis.Warnings, "Contract has mint function - supply can increase")
	}

	if strings.Contains(lowered, "blacklist") || strings.Contains(lowered, "blocked") {
		analysis.HasBlacklist = true
		analysis.Warnings = append(analysis.Warnings, "Contract may have blacklist functionality")
	}

	if strings.Contains(lowered, "owner") || strings.Contains(lowered, "onlyowner") {
		analysis.HasOwner = true
	}

	owner, err := a.chain.Owner(ctx, analysis.ContractAddress)
	if err != nil {
		// No owner() accessor, or the call reverted. Nothing to conclude.
		return
	}

	if owner == chain.ZeroAddress {
		analysis.OwnershipRenounced = true
		// Renounced ownership means nobody can mint anymore.
		kept := analysis.Warnings[:0]
		for _, w := range analysis.Warnings {
			if !strings.Contains(w, "mint function") {
				kept = append(kept, w)
			}
		}
		analysis.Warnings = kept
	}
}

func (a *Analyzer) lookupLiquidity(ctx context.Context, analysis *models.ContractAnalysis) {
	token, err := a.market.Token(ctx, analysis.ContractAddress)
	if err != nil || token == nil {
		a.log.Warn("liquidity check failed", zap.Error(err))
		return
	}

	analysis.HasLiquidity = token.Liquidity.USD > 0
	analysis.LiquidityUSD = token.Liquidity.USD
	analysis.PairAddress = token.PairAddress
	// Lock status is not determinable from any source in scope.
	analysis.LiquidityLocked = false
}

func (a *Analyzer) checkTeaRankEligibility(ctx context.Context, analysis *models.ContractAnalysis) {
	verified, err := a.verifier.IsSourceVerified(ctx, analysis.ContractAddress)
	if err != nil {
		analysis.Recommendations = append(analysis.Recommendations, "Could not verify teaRank eligibility")
		return
	}

	if verified {
		analysis.TeaRankEligible = true
		analysis.Recommendations = append(analysis.Recommendations, "Contract is verified - potentially eligible for teaRank")
	} else {
		analysis.Recommendations = append(analysis.Recommendations, "Contract not verified - unlikely to be teaRank eligible")
	}
}

// riskScore aggregates the analysis fields into a 0-10 score with fixed
// weights. Higher is riskier.
func riskScore(analysis *models.ContractAnalysis) int {
	score := 0

	if analysis.IsHoneypot {
		score += 10
	}
	if !analysis.CanSell {
		score += 8
	}
	if analysis.HasMintFunction && !analysis.OwnershipRenounced {
		score += 3
	}
	if analysis.HasBlacklist {
		score += 3
	}
	if !analysis.LiquidityLocked {
		score += 2
	}
	if analysis.BuyTax > 10 {
		score += 2
	}
	if analysis.SellTax > 10 {
		score += 2
	}
	if !analysis.HasLiquidity {
		score += 4
	}

	if analysis.OwnershipRenounced {
		score -= 2
	}
	if analysis.LiquidityLocked {
		score -= 2
	}
	if analysis.TeaRankEligible {
		score -= 1
	}

	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
