package models

// The analysis provider is generative, so enum fields are open string types.
// Values outside the known set are preserved and displayed verbatim.

// Sentiment is the overall market mood.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentNeutral Sentiment = "Neutral"
	SentimentBearish Sentiment = "Bearish"
	SentimentRekt    Sentiment = "Rekt"
)

// Known reports whether s is a recognised literal.
func (s Sentiment) Known() bool {
	switch s {
	case SentimentBullish, SentimentNeutral, SentimentBearish, SentimentRekt:
		return true
	}
	return false
}

// RiskLevel is the overall risk grade.
type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskExtreme RiskLevel = "Extreme"
)

func (r RiskLevel) Known() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskExtreme:
		return true
	}
	return false
}

// HolderQuality grades holder conviction.
type HolderQuality string

const (
	HolderDiamond HolderQuality = "Diamond"
	HolderNeutral HolderQuality = "Neutral"
	HolderPaper   HolderQuality = "Paper"
)

func (h HolderQuality) Known() bool {
	switch h {
	case HolderDiamond, HolderNeutral, HolderPaper:
		return true
	}
	return false
}

// ExitSignal is the alpha terminal's timing call.
type ExitSignal string

const (
	ExitStrongHold ExitSignal = "Strong Hold"
	ExitTakeProfit ExitSignal = "Take Profit"
	ExitDangerTop  ExitSignal = "Danger: Top"
	ExitAccumulate ExitSignal = "Accumulate"
)

func (e ExitSignal) Known() bool {
	switch e {
	case ExitStrongHold, ExitTakeProfit, ExitDangerTop, ExitAccumulate:
		return true
	}
	return false
}

// ClusterRisk grades wallet clustering.
type ClusterRisk string

const (
	ClusterLow      ClusterRisk = "Low"
	ClusterMedium   ClusterRisk = "Medium"
	ClusterHigh     ClusterRisk = "High"
	ClusterCritical ClusterRisk = "Critical"
)

func (c ClusterRisk) Known() bool {
	switch c {
	case ClusterLow, ClusterMedium, ClusterHigh, ClusterCritical:
		return true
	}
	return false
}

// MoneyFlow is the direction of smart-money movement.
type MoneyFlow string

const (
	FlowStrong  MoneyFlow = "Strong"
	FlowNeutral MoneyFlow = "Neutral"
	FlowOutflow MoneyFlow = "Outflow"
)

func (m MoneyFlow) Known() bool {
	switch m {
	case FlowStrong, FlowNeutral, FlowOutflow:
		return true
	}
	return false
}

// HolderTrend is the direction of top-holder balances.
type HolderTrend string

const (
	TrendIncreasing HolderTrend = "Increasing"
	TrendStable     HolderTrend = "Stable"
	TrendDecreasing HolderTrend = "Decreasing"
)

func (h HolderTrend) Known() bool {
	switch h {
	case TrendIncreasing, TrendStable, TrendDecreasing:
		return true
	}
	return false
}

// Concentration grades how concentrated pool liquidity is.
type Concentration string

const (
	ConcentrationHigh   Concentration = "High"
	ConcentrationMedium Concentration = "Medium"
	ConcentrationLow    Concentration = "Low"
)

func (c Concentration) Known() bool {
	switch c {
	case ConcentrationHigh, ConcentrationMedium, ConcentrationLow:
		return true
	}
	return false
}
