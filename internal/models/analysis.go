package models

// RiskLevel is a categorical classification of the deep-analysis risk score.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "SAFE"
	RiskCaution RiskLevel = "CAUTION"
	RiskRisky   RiskLevel = "RISKY"
	RiskUnknown RiskLevel = "UNKNOWN"
)

// RiskLevelForScore maps a 0-10 risk score to its level.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= 3:
		return RiskSafe
	case score <= 6:
		return RiskCaution
	default:
		return RiskRisky
	}
}

// ContractAnalysis is the result of a deep analysis of one contract address.
type ContractAnalysis struct {
	ContractAddress    string    `json:"contractAddress"`
	IsValid            bool      `json:"isValid"`
	IsHoneypot         bool      `json:"isHoneypot"`
	CanBuy             bool      `json:"canBuy"`
	CanSell            bool      `json:"canSell"`
	HasLiquidity       bool      `json:"hasLiquidity"`
	LiquidityUSD       float64   `json:"liquidityUsd"`
	LiquidityLocked    bool      `json:"liquidityLocked"`
	PairAddress        string    `json:"pairAddress,omitempty"`
	OwnershipRenounced bool      `json:"ownershipRenounced"`
	HasMintFunction    bool      `json:"hasMintFunction"`
	HasBlacklist       bool      `json:"hasBlacklist"`
	HasOwner           bool      `json:"hasOwner"`
	BuyTax             float64   `json:"buyTax"`
	SellTax            float64   `json:"sellTax"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	RiskScore          int       `json:"riskScore"`
	Warnings           []string  `json:"warnings"`
	Recommendations    []string  `json:"recommendations"`
	TeaRankEligible    bool      `json:"teaRankEligible"`
	Error              string    `json:"error,omitempty"`
}
