package display

import (
	"testing"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

func TestSentimentTone(t *testing.T) {
	cases := map[models.Sentiment]Tone{
		models.SentimentBullish: TonePositive,
		"Very Bullish":          TonePositive,
		models.SentimentBearish: ToneNegative,
		models.SentimentRekt:    ToneRekt,
		models.SentimentNeutral: ToneNeutral,
		"Moonish":               ToneNeutral,
	}
	for in, want := range cases {
		if got := SentimentTone(in); got != want {
			t.Errorf("SentimentTone(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestExitSignalTone(t *testing.T) {
	cases := map[models.ExitSignal]Tone{
		models.ExitStrongHold: TonePositive,
		models.ExitAccumulate: TonePositive,
		models.ExitDangerTop:  ToneDanger,
		models.ExitTakeProfit: ToneCaution,
	}
	for in, want := range cases {
		if got := ExitSignalTone(in); got != want {
			t.Errorf("ExitSignalTone(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestProbabilityBand(t *testing.T) {
	cases := map[int]string{
		0:   ProbabilityLow,
		29:  ProbabilityLow,
		30:  ProbabilityModerate,
		64:  ProbabilityModerate,
		65:  ProbabilityCritical,
		100: ProbabilityCritical,
	}
	for in, want := range cases {
		if got := ProbabilityBand(in); got != want {
			t.Errorf("ProbabilityBand(%d) = %s, want %s", in, got, want)
		}
	}
	if ProbabilityTone(ProbabilityCritical) != ToneDanger {
		t.Error("critical band should be danger")
	}
	if probabilityLabelKey(ProbabilityModerate) != "prediction.mod_risk" {
		t.Error("unexpected moderate label key")
	}
}

func TestPVPTone(t *testing.T) {
	if PVPTone(70) != ToneNeutral {
		t.Error("70 should not be flagged")
	}
	if PVPTone(71) != ToneNegative {
		t.Error("71 should be flagged")
	}
}

func TestRiskTone(t *testing.T) {
	if RiskTone("Critical") != ToneDanger || RiskTone("Extreme") != ToneDanger {
		t.Error("critical and extreme should be danger")
	}
	if RiskTone("Unheard") != ToneNeutral {
		t.Error("unknown risk should be neutral")
	}
}
