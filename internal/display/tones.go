package display

import (
	"strings"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Tone selects colour styling. Values double as CSS class suffixes.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneCaution  Tone = "caution"
	ToneDanger   Tone = "danger"
	ToneRekt     Tone = "rekt"
	ToneNeutral  Tone = "neutral"
)

// SentimentTone matches by substring so decorated values ("Very Bullish") still colour.
func SentimentTone(s models.Sentiment) Tone {
	v := string(s)
	switch {
	case strings.Contains(v, "Bullish"):
		return TonePositive
	case strings.Contains(v, "Bearish"):
		return ToneNegative
	case strings.Contains(v, "Rekt"):
		return ToneRekt
	}
	return ToneNeutral
}

// ExitSignalTone colours the alpha terminal signal.
func ExitSignalTone(s models.ExitSignal) Tone {
	v := string(s)
	switch {
	case strings.Contains(v, "Hold"), strings.Contains(v, "Accumulate"):
		return TonePositive
	case strings.Contains(v, "Danger"):
		return ToneDanger
	}
	return ToneCaution
}

// RiskTone colours a risk level or cluster risk literal.
func RiskTone(level string) Tone {
	switch level {
	case "Low":
		return TonePositive
	case "Medium":
		return ToneCaution
	case "High":
		return ToneNegative
	case "Extreme", "Critical":
		return ToneDanger
	}
	return ToneNeutral
}

// MoneyFlowTone colours whale inflow.
func MoneyFlowTone(f models.MoneyFlow) Tone {
	switch f {
	case models.FlowStrong:
		return TonePositive
	case models.FlowOutflow:
		return ToneNegative
	}
	return ToneNeutral
}

// PVPTone flags bot-dominated trading above 70.
func PVPTone(pct int) Tone {
	if pct > 70 {
		return ToneNegative
	}
	return ToneNeutral
}

// Probability bands for the dump-risk gauge.
const (
	ProbabilityLow      = "low"
	ProbabilityModerate = "moderate"
	ProbabilityCritical = "critical"
)

// ProbabilityBand classifies a 0-100 probability: <30 low, <65 moderate, else critical.
func ProbabilityBand(pct int) string {
	switch {
	case pct < 30:
		return ProbabilityLow
	case pct < 65:
		return ProbabilityModerate
	}
	return ProbabilityCritical
}

// ProbabilityTone maps a probability band to a tone.
func ProbabilityTone(band string) Tone {
	switch band {
	case ProbabilityLow:
		return TonePositive
	case ProbabilityModerate:
		return ToneCaution
	}
	return ToneDanger
}

// probabilityLabelKey maps a band to its label key.
func probabilityLabelKey(band string) string {
	switch band {
	case ProbabilityLow:
		return "prediction.low_risk"
	case ProbabilityModerate:
		return "prediction.mod_risk"
	}
	return "prediction.crit_risk"
}
