package analysis

import (
	"sort"

	"google.golang.org/genai"
)

func str(desc string) *genai.Schema { return &genai.Schema{Type: genai.TypeString, Description: desc} }
func num(desc string) *genai.Schema { return &genai.Schema{Type: genai.TypeNumber, Description: desc} }
func boolean(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean, Description: desc}
}
func strList(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: &genai.Schema{Type: genai.TypeString}}
}

// object builds an object schema. Every property is required unless listed in optional.
func object(props map[string]*genai.Schema, optional ...string) *genai.Schema {
	skip := make(map[string]bool, len(optional))
	for _, o := range optional {
		skip[o] = true
	}
	required := make([]string, 0, len(props))
	for _, name := range propertyOrder(props) {
		if !skip[name] {
			required = append(required, name)
		}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         required,
		PropertyOrdering: propertyOrder(props),
	}
}

// topLevelOrder fixes the property order the model is asked to emit.
var topLevelOrder = []string{
	"score", "sentiment", "riskLevel", "pvpIndex", "communityHeat", "holderQuality",
	"summary", "pros", "cons", "tokenCharacteristics", "estimatedHolderCount", "smartMoneySignal",
	"alphaTerminal", "marketDepth", "securityAudit", "bubbleMapAnalysis", "prediction",
	"fibonacci", "investmentStrategy", "socialIntelligence",
}

func propertyOrder(props map[string]*genai.Schema) []string {
	ordered := make([]string, 0, len(props))
	seen := make(map[string]bool, len(props))
	for _, name := range topLevelOrder {
		if _, ok := props[name]; ok {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(props))
	for name := range props {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// ResponseSchema returns the structured-output schema for an analysis document.
// Enum fields are typed as strings with their literals in the description; the
// dashboard preserves values outside those sets.
func ResponseSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"score":                num("Overall confidence score, 0-100."),
		"sentiment":            str("One of: Bullish, Neutral, Bearish, Rekt."),
		"riskLevel":            str("One of: Low, Medium, High, Extreme."),
		"pvpIndex":             num("Player-vs-player trading intensity, 0-100."),
		"communityHeat":        num("Community engagement, 0-100."),
		"holderQuality":        str("One of: Diamond, Neutral, Paper."),
		"summary":              str("Executive summary."),
		"pros":                 strList("Strengths."),
		"cons":                 strList("Risks."),
		"tokenCharacteristics": strList("Utilities, tax structure, community nature."),
		"estimatedHolderCount": num("Most current holder count."),
		"smartMoneySignal":     str("Short smart-money observation."),
		"alphaTerminal": object(map[string]*genai.Schema{
			"viralVelocity":       num("0-100."),
			"insiderStealthScore": num("0-100."),
			"smartMoneyInflow":    num("0-100."),
			"exitSignal":          str("One of: Strong Hold, Take Profit, Danger: Top, Accumulate."),
			"topHoldersTrend":     str("One of: Increasing, Stable, Decreasing."),
			"narrativeAlignment":  str("How well the token fits current narratives."),
		}),
		"marketDepth": object(map[string]*genai.Schema{
			"buyWallStrength":        num("Relative buy-side pressure."),
			"sellWallStrength":       num("Relative sell-side pressure."),
			"slippageImpact1000USD":  num("Estimated slippage percent for a 1000 USD trade."),
			"liquidityConcentration": str("One of: High, Medium, Low."),
			"wallSummary":            str("Order book summary."),
		}),
		"securityAudit": object(map[string]*genai.Schema{
			"lpBurned":             boolean("Liquidity pool tokens burned."),
			"mintRevoked":          boolean("Mint authority revoked."),
			"freezeRevoked":        boolean("Freeze authority revoked."),
			"topHoldersPercentage": num("Supply share held by the top 10 holders, percent."),
			"isHoneypot":           boolean("Selling is blocked."),
			"auditScore":           num("0-100."),
			"auditSummary":         str("Audit summary."),
		}),
		"bubbleMapAnalysis": object(map[string]*genai.Schema{
			"clusterRisk":            str("One of: Low, Medium, High, Critical."),
			"hiddenConnectionsFound": boolean("Linked wallets detected."),
			"summary":                str("Cluster summary."),
			"notableClusters":        strList("Notable wallet clusters."),
		}),
		"prediction": object(map[string]*genai.Schema{
			"dropProbability":     num("Probability of a sharp drop, 0-100."),
			"bottomTargetPrice":   str("Projected floor price in USD."),
			"recoveryProbability": num("Probability of recovery, 0-100."),
			"recoveryTargetPrice": str("Recovery target price in USD."),
			"timeframe":           str("Prediction window."),
			"dangerZoneReasoning": str("Reasoning."),
		}),
		"fibonacci": object(map[string]*genai.Schema{
			"level0":   num("0% retracement price (recent low)."),
			"level236": num("23.6% retracement price."),
			"level382": num("38.2% retracement price."),
			"level500": num("50% retracement price."),
			"level618": num("61.8% retracement price."),
			"level786": num("78.6% retracement price."),
			"level100": num("100% retracement price (recent high)."),
		}),
		"investmentStrategy": object(map[string]*genai.Schema{
			"doubleUpScenario": object(map[string]*genai.Schema{
				"targetPrice":      str("Price at 2x."),
				"actionPlan":       str("What to do."),
				"psychologicalTip": str("Mindset advice."),
			}),
			"halfDownScenario": object(map[string]*genai.Schema{
				"stopLossPrice":  str("Stop-loss price."),
				"actionPlan":     str("What to do."),
				"warningSignals": strList("Red flags."),
			}),
		}),
		"socialIntelligence": object(map[string]*genai.Schema{
			"developerX": object(map[string]*genai.Schema{
				"handle":             str("Developer X handle."),
				"joinedDate":         str("Account creation date."),
				"followers":          str("Follower count."),
				"bio":                str("Profile bio."),
				"pastProjects":       strList("Previous projects."),
				"reputationScore":    num("0-100."),
				"isVerifiedIdentity": boolean("Identity publicly known."),
			}),
			"whalePulse": object(map[string]*genai.Schema{
				"whaleConcentration":      num("Whale supply share, percent."),
				"smartMoneyInflow":        str("One of: Strong, Neutral, Outflow."),
				"recentLargeTransactions": strList("Recent large transactions."),
			}),
			"kolSentiment": object(map[string]*genai.Schema{
				"topMentions":       strList("Influencers mentioning the token."),
				"influencerSupport": num("0-100."),
				"narrativeStrength": str("Narrative strength."),
			}),
			"trendingNarratives": strList("Narratives the token rides."),
		}),
	}, "holderQuality", "smartMoneySignal")
}
