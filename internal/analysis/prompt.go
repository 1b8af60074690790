package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

func literals[T ~string](vs ...T) string {
	quoted := make([]string, len(vs))
	for i, v := range vs {
		quoted[i] = "'" + string(v) + "'"
	}
	return strings.Join(quoted, ", ")
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// BuildPrompt renders the analysis instruction for snap in the language of loc.
// Live market figures are embedded as grounding context; the price is passed
// through verbatim.
func BuildPrompt(snap *models.TokenSnapshot, loc locale.Locale) string {
	var b strings.Builder

	name := snap.BaseToken.Name
	if name == "" {
		name = snap.Symbol()
	}
	chain := snap.Chain
	if chain == "" {
		chain = "solana"
	}

	fmt.Fprintf(&b, "Analyze the %s token %s (%s, symbol %s).\n\n", chainTitle(chain), snap.BaseToken.Address, name, snap.Symbol())

	b.WriteString("CRITICAL REAL-TIME DATA:\n")
	fmt.Fprintf(&b, "- PRICE: $%s\n", snap.PriceUSD)
	if snap.IsFDV {
		fmt.Fprintf(&b, "- MARKET CAP: %s (FDV, market cap unavailable)\n", money(snap.Valuation))
	} else {
		fmt.Fprintf(&b, "- MARKET CAP: %s\n", money(snap.Valuation))
	}
	fmt.Fprintf(&b, "- 24H VOLUME: %s\n", money(snap.Volume.H24))
	if snap.Liquidity != nil {
		fmt.Fprintf(&b, "- LIQUIDITY: %s\n", money(*snap.Liquidity))
	} else {
		b.WriteString("- LIQUIDITY: unknown\n")
	}
	fmt.Fprintf(&b, "- 24H PRICE CHANGE: %s%%\n", strconv.FormatFloat(snap.PriceChange.H24, 'f', -1, 64))
	if snap.Dex != "" {
		fmt.Fprintf(&b, "- DEX: %s (pair %s)\n", snap.Dex, snap.PairAddress)
	}
	b.WriteString("\n")

	b.WriteString(`Perform a professional deep scan using Google Search grounding to find the latest data.
Cover:
- Security posture: LP burn, mint and freeze authority, top holder concentration, honeypot behaviour.
- Alpha metrics: viral velocity, insider stealth and smart-money inflow scores (0-100), an exit-timing signal and the top-holder trend.
- Wallet cluster risk and hidden connections between large holders.
- Fibonacci retracement levels over the recent volatility range (level0 is the recent low, level100 the recent high).
- Order book depth: buy vs sell wall strength and slippage for a $1,000 trade.
- A dual-scenario investment strategy: what to do if the price doubles and if it halves.
- Developer profile, whale activity and influencer sentiment.
- Specific "Token Characteristics" (utilities, tax structures, community nature) and the most current "Holder Count" from block explorers or reliable trackers.

`)

	fmt.Fprintf(&b, "All free-text output must be in professional %s.\n\n", loc.LanguageName())

	b.WriteString("ENUM/STATUS RULES (DO NOT TRANSLATE, always use these exact English literals):\n")
	fmt.Fprintf(&b, "- sentiment: %s\n", literals(models.SentimentBullish, models.SentimentNeutral, models.SentimentBearish, models.SentimentRekt))
	fmt.Fprintf(&b, "- riskLevel: %s\n", literals(models.RiskLow, models.RiskMedium, models.RiskHigh, models.RiskExtreme))
	fmt.Fprintf(&b, "- holderQuality: %s\n", literals(models.HolderDiamond, models.HolderNeutral, models.HolderPaper))
	fmt.Fprintf(&b, "- exitSignal: %s\n", literals(models.ExitStrongHold, models.ExitTakeProfit, models.ExitDangerTop, models.ExitAccumulate))
	fmt.Fprintf(&b, "- clusterRisk: %s\n", literals(models.ClusterLow, models.ClusterMedium, models.ClusterHigh, models.ClusterCritical))
	fmt.Fprintf(&b, "- smartMoneyInflow (whalePulse): %s\n", literals(models.FlowStrong, models.FlowNeutral, models.FlowOutflow))
	fmt.Fprintf(&b, "- topHoldersTrend: %s\n", literals(models.TrendIncreasing, models.TrendStable, models.TrendDecreasing))
	fmt.Fprintf(&b, "- liquidityConcentration: %s\n", literals(models.ConcentrationHigh, models.ConcentrationMedium, models.ConcentrationLow))
	b.WriteString("\nOutput strictly in JSON format.\n")

	return b.String()
}

func chainTitle(chain string) string {
	if chain == "" {
		return chain
	}
	return strings.ToUpper(chain[:1]) + chain[1:]
}
