package display

import (
	"math"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Band thresholds, in percent.
const (
	ActiveVolumeThreshold  = 20.0
	DeepLiquidityThreshold = 10.0
	HighVelocityThreshold  = 50.0
)

// RatioInput holds the three figures the ratios derive from. MarketCap is the
// valuation actually used (market cap or FDV); Liquidity is zero when unknown.
type RatioInput struct {
	MarketCap float64
	Liquidity float64
	Volume    float64
}

// Ratio is a percentage that is undefined when its denominator is zero.
type Ratio struct {
	Value   float64
	Defined bool
}

// String renders the ratio as "12.3%" or N/A.
func (r Ratio) String() string {
	if !r.Defined {
		return NA
	}
	return FormatPercent(r.Value)
}

// Ratios are the derived market health ratios.
type Ratios struct {
	VolumeToMarketCap    Ratio
	LiquidityToMarketCap Ratio
	LiquidityTurnover    Ratio
}

// Band keys name the classification of each ratio; they are label keys.
const (
	BandActive   = "band.active"
	BandStable   = "band.stable"
	BandDeep     = "band.deep"
	BandThin     = "band.thin"
	BandVelocity = "band.velocity"
	BandHealthy  = "band.healthy"
	BandNA       = "band.na"
)

// ComputeRatios derives vol/MC, liq/MC and vol/liq. A zero, negative or
// non-finite denominator leaves the ratio undefined with value 0.
func ComputeRatios(in RatioInput) Ratios {
	return Ratios{
		VolumeToMarketCap:    ratio(in.Volume, in.MarketCap),
		LiquidityToMarketCap: ratio(in.Liquidity, in.MarketCap),
		LiquidityTurnover:    ratio(in.Volume, in.Liquidity),
	}
}

// RatiosFor computes ratios from a snapshot. Unknown liquidity counts as zero.
func RatiosFor(s *models.TokenSnapshot) Ratios {
	if s == nil {
		return Ratios{}
	}
	liq := 0.0
	if s.Liquidity != nil {
		liq = *s.Liquidity
	}
	return ComputeRatios(RatioInput{MarketCap: s.Valuation, Liquidity: liq, Volume: s.Volume.H24})
}

func ratio(num, den float64) Ratio {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) || math.IsNaN(num) || math.IsInf(num, 0) {
		return Ratio{}
	}
	v := num / den * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Ratio{}
	}
	return Ratio{Value: v, Defined: true}
}

// VolumeBand classifies trading intensity; the bool reports the strong side.
func (r Ratios) VolumeBand() (string, bool) {
	return band(r.VolumeToMarketCap, ActiveVolumeThreshold, BandActive, BandStable)
}

// LiquidityBand classifies depth relative to valuation.
func (r Ratios) LiquidityBand() (string, bool) {
	return band(r.LiquidityToMarketCap, DeepLiquidityThreshold, BandDeep, BandThin)
}

// TurnoverBand classifies how fast liquidity cycles.
func (r Ratios) TurnoverBand() (string, bool) {
	return band(r.LiquidityTurnover, HighVelocityThreshold, BandVelocity, BandHealthy)
}

func band(r Ratio, threshold float64, above, below string) (string, bool) {
	if !r.Defined {
		return BandNA, false
	}
	if r.Value > threshold {
		return above, true
	}
	return below, false
}
