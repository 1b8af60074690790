package analysis

import (
	"encoding/json"
	"strings"
	"testing"
)

// validDocument returns a complete analysis document as a generic map so
// tests can delete or corrupt individual fields.
func validDocument() map[string]any {
	return map[string]any{
		"score":                72,
		"sentiment":            "Bullish",
		"riskLevel":            "High",
		"pvpIndex":             0.64,
		"communityHeat":        81,
		"holderQuality":        "Diamond",
		"summary":              "Momentum is strong but supply is concentrated.",
		"pros":                 []any{"Active community", "LP burned"},
		"cons":                 []any{"Top 10 hold 38%"},
		"tokenCharacteristics": []any{"No tax", "Community takeover"},
		"estimatedHolderCount": 12345,
		"smartMoneySignal":     "Two tracked wallets accumulating.",
		"alphaTerminal": map[string]any{
			"viralVelocity":       88,
			"insiderStealthScore": 0.35,
			"smartMoneyInflow":    61,
			"exitSignal":          "Take Profit",
			"topHoldersTrend":     "Decreasing",
			"narrativeAlignment":  "AI agents",
		},
		"marketDepth": map[string]any{
			"buyWallStrength":        70,
			"sellWallStrength":       30,
			"slippageImpact1000USD":  1.8,
			"liquidityConcentration": "Medium",
			"wallSummary":            "Buyers defend the 0.0000011 level.",
		},
		"securityAudit": map[string]any{
			"lpBurned":             true,
			"mintRevoked":          true,
			"freezeRevoked":        false,
			"topHoldersPercentage": 38,
			"isHoneypot":           false,
			"auditScore":           74,
			"auditSummary":         "Freeze authority still active.",
		},
		"bubbleMapAnalysis": map[string]any{
			"clusterRisk":            "Medium",
			"hiddenConnectionsFound": true,
			"summary":                "One cluster of five funded wallets.",
			"notableClusters":        []any{"Cluster A: 5 wallets, 9%"},
		},
		"prediction": map[string]any{
			"dropProbability":     0.42,
			"bottomTargetPrice":   "$0.00000090",
			"recoveryProbability": 55,
			"recoveryTargetPrice": "$0.0000015",
			"timeframe":           "48h",
			"dangerZoneReasoning": "Volume fading after the spike.",
		},
		"fibonacci": map[string]any{
			"level0": 0.0000009, "level236": 0.00000104, "level382": 0.00000113,
			"level500": 0.0000012, "level618": 0.00000127, "level786": 0.00000137, "level100": 0.0000015,
		},
		"investmentStrategy": map[string]any{
			"doubleUpScenario": map[string]any{
				"targetPrice": "$0.0000025", "actionPlan": "Take 50% off.", "psychologicalTip": "Do not chase.",
			},
			"halfDownScenario": map[string]any{
				"stopLossPrice": "$0.0000006", "actionPlan": "Exit below the floor.", "warningSignals": []any{"Dev wallet sells"},
			},
		},
		"socialIntelligence": map[string]any{
			"developerX": map[string]any{
				"handle": "@dev", "joinedDate": "2023-05", "followers": "12.3K", "bio": "builder",
				"pastProjects": []any{"OLD"}, "reputationScore": 60, "isVerifiedIdentity": false,
			},
			"whalePulse": map[string]any{
				"whaleConcentration": 22, "smartMoneyInflow": "Strong", "recentLargeTransactions": []any{"+40 SOL"},
			},
			"kolSentiment": map[string]any{
				"topMentions": []any{"@kol"}, "influencerSupport": 70, "narrativeStrength": "Rising",
			},
			"trendingNarratives": []any{"AI agents"},
		},
	}
}

func encode(t *testing.T, doc map[string]any) string {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

// setPath replaces (or with del, removes) a dotted path in doc.
func setPath(doc map[string]any, path string, v any, del bool) {
	parts := strings.Split(path, ".")
	m := doc
	for _, p := range parts[:len(parts)-1] {
		m = m[p].(map[string]any)
	}
	if del {
		delete(m, parts[len(parts)-1])
		return
	}
	m[parts[len(parts)-1]] = v
}
