package models

// AnalysisResult is the structured document returned by the analysis provider.
// JSON keys match the provider response schema.
type AnalysisResult struct {
	Score                float64            `json:"score"`
	Sentiment            Sentiment          `json:"sentiment"`
	RiskLevel            RiskLevel          `json:"riskLevel"`
	PVPIndex             float64            `json:"pvpIndex"`
	CommunityHeat        float64            `json:"communityHeat"`
	HolderQuality        HolderQuality      `json:"holderQuality,omitempty"`
	Summary              string             `json:"summary"`
	Pros                 []string           `json:"pros"`
	Cons                 []string           `json:"cons"`
	TokenCharacteristics []string           `json:"tokenCharacteristics"`
	EstimatedHolderCount float64            `json:"estimatedHolderCount"`
	SmartMoneySignal     string             `json:"smartMoneySignal,omitempty"`
	Prediction           PricePrediction    `json:"prediction"`
	Fibonacci            FibonacciLevels    `json:"fibonacci"`
	MarketDepth          MarketDepth        `json:"marketDepth"`
	SecurityAudit        SecurityAudit      `json:"securityAudit"`
	BubbleMapAnalysis    BubbleMapAnalysis  `json:"bubbleMapAnalysis"`
	InvestmentStrategy   InvestmentStrategy `json:"investmentStrategy"`
	SocialIntelligence   SocialIntelligence `json:"socialIntelligence"`
	AlphaTerminal        AlphaTerminal      `json:"alphaTerminal"`
	Sources              []Source           `json:"sources,omitempty"`
}

// Source is a search-grounding citation attached after parsing.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PricePrediction is the short-term drawdown and recovery estimate.
type PricePrediction struct {
	DropProbability     float64 `json:"dropProbability"`
	BottomTargetPrice   string  `json:"bottomTargetPrice"`
	RecoveryProbability float64 `json:"recoveryProbability"`
	RecoveryTargetPrice string  `json:"recoveryTargetPrice"`
	Timeframe           string  `json:"timeframe"`
	DangerZoneReasoning string  `json:"dangerZoneReasoning"`
}

// FibonacciLevels are retracement prices from the recent low (0) to high (100).
type FibonacciLevels struct {
	Level0   float64 `json:"level0"`
	Level236 float64 `json:"level236"`
	Level382 float64 `json:"level382"`
	Level500 float64 `json:"level500"`
	Level618 float64 `json:"level618"`
	Level786 float64 `json:"level786"`
	Level100 float64 `json:"level100"`
}

// MarketDepth is the order-book wall estimate.
type MarketDepth struct {
	BuyWallStrength        float64       `json:"buyWallStrength"`
	SellWallStrength       float64       `json:"sellWallStrength"`
	SlippageImpact1000USD  float64       `json:"slippageImpact1000USD"`
	LiquidityConcentration Concentration `json:"liquidityConcentration"`
	WallSummary            string        `json:"wallSummary"`
}

// SecurityAudit is the contract authority and holder posture.
type SecurityAudit struct {
	LPBurned             bool    `json:"lpBurned"`
	MintRevoked          bool    `json:"mintRevoked"`
	FreezeRevoked        bool    `json:"freezeRevoked"`
	TopHoldersPercentage float64 `json:"topHoldersPercentage"`
	IsHoneypot           bool    `json:"isHoneypot"`
	AuditScore           float64 `json:"auditScore"`
	AuditSummary         string  `json:"auditSummary"`
}

// BubbleMapAnalysis is the wallet-cluster assessment.
type BubbleMapAnalysis struct {
	ClusterRisk            ClusterRisk `json:"clusterRisk"`
	HiddenConnectionsFound bool        `json:"hiddenConnectionsFound"`
	Summary                string      `json:"summary"`
	NotableClusters        []string    `json:"notableClusters"`
}

// InvestmentStrategy holds the two price scenarios.
type InvestmentStrategy struct {
	DoubleUpScenario DoubleUpScenario `json:"doubleUpScenario"`
	HalfDownScenario HalfDownScenario `json:"halfDownScenario"`
}

// DoubleUpScenario is the plan if the price doubles.
type DoubleUpScenario struct {
	TargetPrice      string `json:"targetPrice"`
	ActionPlan       string `json:"actionPlan"`
	PsychologicalTip string `json:"psychologicalTip"`
}

// HalfDownScenario is the plan if the price halves.
type HalfDownScenario struct {
	StopLossPrice  string   `json:"stopLossPrice"`
	ActionPlan     string   `json:"actionPlan"`
	WarningSignals []string `json:"warningSignals"`
}

// SocialIntelligence groups developer, whale and influencer signals.
type SocialIntelligence struct {
	DeveloperX         DeveloperProfile `json:"developerX"`
	WhalePulse         WhalePulse       `json:"whalePulse"`
	KOLSentiment       KOLSentiment     `json:"kolSentiment"`
	TrendingNarratives []string         `json:"trendingNarratives"`
}

// DeveloperProfile describes the deployer's public identity.
type DeveloperProfile struct {
	Handle             string   `json:"handle"`
	JoinedDate         string   `json:"joinedDate"`
	Followers          string   `json:"followers"`
	Bio                string   `json:"bio"`
	PastProjects       []string `json:"pastProjects"`
	ReputationScore    float64  `json:"reputationScore"`
	IsVerifiedIdentity bool     `json:"isVerifiedIdentity"`
}

// WhalePulse summarises large-holder activity.
type WhalePulse struct {
	WhaleConcentration      float64   `json:"whaleConcentration"`
	SmartMoneyInflow        MoneyFlow `json:"smartMoneyInflow"`
	RecentLargeTransactions []string  `json:"recentLargeTransactions"`
}

// KOLSentiment summarises influencer coverage.
type KOLSentiment struct {
	TopMentions       []string `json:"topMentions"`
	InfluencerSupport float64  `json:"influencerSupport"`
	NarrativeStrength string   `json:"narrativeStrength"`
}

// AlphaTerminal holds the momentum scores and exit timing signal.
type AlphaTerminal struct {
	ViralVelocity       float64     `json:"viralVelocity"`
	InsiderStealthScore float64     `json:"insiderStealthScore"`
	SmartMoneyInflow    float64     `json:"smartMoneyInflow"`
	ExitSignal          ExitSignal  `json:"exitSignal"`
	TopHoldersTrend     HolderTrend `json:"topHoldersTrend"`
	NarrativeAlignment  string      `json:"narrativeAlignment"`
}
