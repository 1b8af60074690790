package display

import (
	"strconv"

	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Label renders an enum value through the catalog, falling back to the raw value.
func Label(tr locale.Translator, group, value string) string {
	return tr.Label(group, value)
}

// RatioRow is one market health ratio with its band.
type RatioRow struct {
	Label  string
	Value  string
	Band   string
	Strong bool
	Help   string
}

// SocialLink is a project link with a short badge.
type SocialLink struct {
	Icon string
	URL  string
	Type string
}

// TokenView is the price stats panel.
type TokenView struct {
	Name        string
	Symbol      string
	Address     string
	Chain       string
	Dex         string
	PairAddress string
	ImageURL    string
	PumpFun     bool

	Price      MicroPrice
	Change     string
	ChangeTone Tone

	ValuationLabel string
	Valuation      string
	Estimated      bool
	Liquidity      string
	Volume         string
	Holders        string

	Ratios []RatioRow

	ChartURL      string
	ChartEmbedURL string
	BubbleMapURL  string
	Socials       []SocialLink
}

// NewTokenView builds the stats panel. The holder count comes from the analysis,
// so a nil analysis leaves it N/A.
func NewTokenView(s *models.TokenSnapshot, a *models.AnalysisResult, tr locale.Translator) *TokenView {
	if s == nil {
		return nil
	}

	v := &TokenView{
		Name:        s.BaseToken.Name,
		Symbol:      s.Symbol(),
		Address:     s.BaseToken.Address,
		Chain:       s.Chain,
		Dex:         s.Dex,
		PairAddress: s.PairAddress,
		ImageURL:    s.ImageURL,
		PumpFun:     IsPumpFun(s.PairAddress),
		Price:       FormatMicroPrice(s.PriceUSD),
		Change:      FormatSignedPercent(s.PriceChange.H24),
		Liquidity:   FormatCompactCurrency(s.Liquidity),
		Volume:      FormatCompactCurrency(&s.Volume.H24),
		Holders:     NA,
		Estimated:   s.IsFDV,

		ChartURL:      ChartURL(s.Chain, s.BaseToken.Address),
		ChartEmbedURL: ChartEmbedURL(s.Chain, s.BaseToken.Address),
		BubbleMapURL:  BubbleMapURL(s.Chain, s.BaseToken.Address),
	}

	switch {
	case s.PriceChange.H24 > 0:
		v.ChangeTone = TonePositive
	case s.PriceChange.H24 < 0:
		v.ChangeTone = ToneNegative
	default:
		v.ChangeTone = ToneNeutral
	}

	valuation := s.Valuation
	v.Valuation = FormatCompactCurrency(&valuation)
	if s.IsFDV {
		v.ValuationLabel = tr.T("stats.fdv")
	} else {
		v.ValuationLabel = tr.T("stats.market_cap")
	}

	if a != nil {
		holders := a.EstimatedHolderCount
		v.Holders = FormatCompactNumber(&holders)
	}

	r := RatiosFor(s)
	v.Ratios = []RatioRow{
		ratioRow(tr, "stats.vol_mc", "stats.vol_mc_help", r.VolumeToMarketCap, r.VolumeBand),
		ratioRow(tr, "stats.liq_mc", "stats.liq_mc_help", r.LiquidityToMarketCap, r.LiquidityBand),
		ratioRow(tr, "stats.turnover", "stats.turnover_help", r.LiquidityTurnover, r.TurnoverBand),
	}

	for _, w := range s.Websites {
		if w.URL == "" {
			continue
		}
		v.Socials = append(v.Socials, SocialLink{Icon: SocialIcon(models.SocialWebsite), URL: w.URL, Type: string(models.SocialWebsite)})
	}
	for _, soc := range s.Socials {
		if soc.URL == "" {
			continue
		}
		v.Socials = append(v.Socials, SocialLink{Icon: SocialIcon(soc.Type), URL: soc.URL, Type: string(soc.Type)})
	}

	return v
}

func ratioRow(tr locale.Translator, labelKey, helpKey string, r Ratio, band func() (string, bool)) RatioRow {
	key, strong := band()
	return RatioRow{
		Label:  tr.T(labelKey),
		Value:  r.String(),
		Band:   tr.T(key),
		Strong: strong,
		Help:   tr.T(helpKey),
	}
}

// Gauge is a 0-100 meter.
type Gauge struct {
	Percent int
	Tone    Tone
}

// Badge is a localized enum value with its colour.
type Badge struct {
	Raw   string
	Text  string
	Tone  Tone
	Known bool
}

// AuditCheck is one boolean line of the security audit.
type AuditCheck struct {
	Label string
	Pass  bool
	Text  string
}

// AnalysisView holds every analysis panel in display form.
type AnalysisView struct {
	Score      Gauge
	Sentiment  Badge
	Risk       Badge
	PVP        Gauge
	Heat       Gauge
	Holder     Badge
	HasHolder  bool
	SmartMoney string
	Summary    string
	Pros       []string
	Cons       []string
	Traits     []string
	Sources    []models.Source
	Audit      AuditView
	Depth      DepthView
	Prediction PredictionView
	Fibonacci  []FibRow
	Strategy   models.InvestmentStrategy
	Bubble     BubbleView
	Social     SocialView
	Alpha      AlphaView
}

// AuditView is the security audit panel.
type AuditView struct {
	Score      Gauge
	TopHolders string
	Summary    string
	Checks     []AuditCheck
}

// DepthView is the market depth panel.
type DepthView struct {
	BuyPct        int
	SellPct       int
	Slippage      string
	Concentration Badge
	Summary       string
}

// PredictionView is the dump risk and recovery panel.
type PredictionView struct {
	Drop         Gauge
	BandLabel    string
	Floor        string
	Recovery     string
	RecoveryProb int
	Timeframe    string
	Reasoning    string
}

// BubbleView is the cluster panel.
type BubbleView struct {
	Risk     Badge
	Hidden   bool
	Summary  string
	Clusters []string
}

// SocialView is the social intelligence panel.
type SocialView struct {
	Developer      models.DeveloperProfile
	DevTrust       Gauge
	WhaleConc      Gauge
	Inflow         Badge
	RecentTxs      []string
	TopMentions    []string
	KOLSupport     Gauge
	KOLTrend       []int
	Narrative      string
	TrendingTopics []string
}

// AlphaView is the alpha terminal panel.
type AlphaView struct {
	Viral     Gauge
	Stealth   Gauge
	Inflow    Gauge
	Signal    Badge
	Trend     Badge
	Narrative string
}

// NewAnalysisView normalizes percentages, resolves tones and localizes enum values.
func NewAnalysisView(a *models.AnalysisResult, tr locale.Translator) *AnalysisView {
	if a == nil {
		return nil
	}

	score := NormalizePercent(a.Score)
	pvp := NormalizePercent(a.PVPIndex)
	drop := NormalizePercent(a.Prediction.DropProbability)
	dropBand := ProbabilityBand(drop)
	buy, sell := WallSplit(a.MarketDepth.BuyWallStrength, a.MarketDepth.SellWallStrength)
	auditScore := NormalizePercent(a.SecurityAudit.AuditScore)
	support := NormalizePercent(a.SocialIntelligence.KOLSentiment.InfluencerSupport)

	v := &AnalysisView{
		Score:      Gauge{Percent: score, Tone: scoreTone(score)},
		Sentiment:  badge(tr, "sentiment", string(a.Sentiment), SentimentTone(a.Sentiment), a.Sentiment.Known()),
		Risk:       badge(tr, "risk", string(a.RiskLevel), RiskTone(string(a.RiskLevel)), a.RiskLevel.Known()),
		PVP:        Gauge{Percent: pvp, Tone: PVPTone(pvp)},
		Heat:       Gauge{Percent: NormalizePercent(a.CommunityHeat), Tone: ToneNeutral},
		HasHolder:  a.HolderQuality != "",
		SmartMoney: a.SmartMoneySignal,
		Summary:    a.Summary,
		Pros:       a.Pros,
		Cons:       a.Cons,
		Traits:     a.TokenCharacteristics,
		Sources:    a.Sources,
		Fibonacci:  FibonacciRows(a.Fibonacci),
		Strategy:   a.InvestmentStrategy,

		Audit: AuditView{
			Score:      Gauge{Percent: auditScore, Tone: scoreTone(auditScore)},
			TopHolders: strconv.Itoa(NormalizePercent(a.SecurityAudit.TopHoldersPercentage)) + "%",
			Summary:    a.SecurityAudit.AuditSummary,
			Checks: []AuditCheck{
				auditCheck(tr, "audit.lp_burned", a.SecurityAudit.LPBurned, a.SecurityAudit.LPBurned),
				auditCheck(tr, "audit.mint_revoked", a.SecurityAudit.MintRevoked, a.SecurityAudit.MintRevoked),
				auditCheck(tr, "audit.freeze_revoked", a.SecurityAudit.FreezeRevoked, a.SecurityAudit.FreezeRevoked),
				auditCheck(tr, "audit.honeypot", !a.SecurityAudit.IsHoneypot, a.SecurityAudit.IsHoneypot),
			},
		},

		Depth: DepthView{
			BuyPct:   buy,
			SellPct:  sell,
			Slippage: FormatPercent(a.MarketDepth.SlippageImpact1000USD),
			Concentration: badge(tr, "concentration", string(a.MarketDepth.LiquidityConcentration),
				concentrationTone(a.MarketDepth.LiquidityConcentration), a.MarketDepth.LiquidityConcentration.Known()),
			Summary: a.MarketDepth.WallSummary,
		},

		Prediction: PredictionView{
			Drop:         Gauge{Percent: drop, Tone: ProbabilityTone(dropBand)},
			BandLabel:    tr.T(probabilityLabelKey(dropBand)),
			Floor:        a.Prediction.BottomTargetPrice,
			Recovery:     a.Prediction.RecoveryTargetPrice,
			RecoveryProb: NormalizePercent(a.Prediction.RecoveryProbability),
			Timeframe:    a.Prediction.Timeframe,
			Reasoning:    a.Prediction.DangerZoneReasoning,
		},

		Bubble: BubbleView{
			Risk: badge(tr, "cluster_risk", string(a.BubbleMapAnalysis.ClusterRisk),
				RiskTone(string(a.BubbleMapAnalysis.ClusterRisk)), a.BubbleMapAnalysis.ClusterRisk.Known()),
			Hidden:   a.BubbleMapAnalysis.HiddenConnectionsFound,
			Summary:  a.BubbleMapAnalysis.Summary,
			Clusters: a.BubbleMapAnalysis.NotableClusters,
		},

		Social: SocialView{
			Developer: a.SocialIntelligence.DeveloperX,
			DevTrust:  gaugeOf(a.SocialIntelligence.DeveloperX.ReputationScore),
			WhaleConc: Gauge{Percent: NormalizePercent(a.SocialIntelligence.WhalePulse.WhaleConcentration), Tone: ToneNeutral},
			Inflow: badge(tr, "money_flow", string(a.SocialIntelligence.WhalePulse.SmartMoneyInflow),
				MoneyFlowTone(a.SocialIntelligence.WhalePulse.SmartMoneyInflow), a.SocialIntelligence.WhalePulse.SmartMoneyInflow.Known()),
			RecentTxs:      a.SocialIntelligence.WhalePulse.RecentLargeTransactions,
			TopMentions:    a.SocialIntelligence.KOLSentiment.TopMentions,
			KOLSupport:     Gauge{Percent: support, Tone: ToneNeutral},
			KOLTrend:       KOLTrend(a.SocialIntelligence.KOLSentiment.InfluencerSupport),
			Narrative:      a.SocialIntelligence.KOLSentiment.NarrativeStrength,
			TrendingTopics: a.SocialIntelligence.TrendingNarratives,
		},

		Alpha: AlphaView{
			Viral:   gaugeOf(a.AlphaTerminal.ViralVelocity),
			Stealth: gaugeOf(a.AlphaTerminal.InsiderStealthScore),
			Inflow:  gaugeOf(a.AlphaTerminal.SmartMoneyInflow),
			Signal: badge(tr, "exit_signal", string(a.AlphaTerminal.ExitSignal),
				ExitSignalTone(a.AlphaTerminal.ExitSignal), a.AlphaTerminal.ExitSignal.Known()),
			Trend: badge(tr, "holder_trend", string(a.AlphaTerminal.TopHoldersTrend),
				trendTone(a.AlphaTerminal.TopHoldersTrend), a.AlphaTerminal.TopHoldersTrend.Known()),
			Narrative: a.AlphaTerminal.NarrativeAlignment,
		},
	}

	if v.HasHolder {
		v.Holder = badge(tr, "holder_quality", string(a.HolderQuality), holderTone(a.HolderQuality), a.HolderQuality.Known())
	}

	return v
}

func badge(tr locale.Translator, group, raw string, tone Tone, known bool) Badge {
	return Badge{Raw: raw, Text: Label(tr, group, raw), Tone: tone, Known: known}
}

func gaugeOf(v float64) Gauge {
	p := NormalizePercent(v)
	return Gauge{Percent: p, Tone: scoreTone(p)}
}

func auditCheck(tr locale.Translator, key string, pass, answer bool) AuditCheck {
	text := tr.T("audit.no")
	if answer {
		text = tr.T("audit.yes")
	}
	return AuditCheck{Label: tr.T(key), Pass: pass, Text: text}
}

// scoreTone: 70 and up is healthy, 40 and up middling.
func scoreTone(p int) Tone {
	switch {
	case p >= 70:
		return TonePositive
	case p >= 40:
		return ToneCaution
	}
	return ToneNegative
}

func concentrationTone(c models.Concentration) Tone {
	switch c {
	case models.ConcentrationHigh:
		return TonePositive
	case models.ConcentrationLow:
		return ToneNegative
	}
	return ToneCaution
}

func holderTone(h models.HolderQuality) Tone {
	switch h {
	case models.HolderDiamond:
		return TonePositive
	case models.HolderPaper:
		return ToneNegative
	}
	return ToneNeutral
}

func trendTone(t models.HolderTrend) Tone {
	switch t {
	case models.TrendIncreasing:
		return TonePositive
	case models.TrendDecreasing:
		return ToneNegative
	}
	return ToneNeutral
}
