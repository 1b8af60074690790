package display

import "github.com/bobmcallan/meme-scanner/internal/models"

// Derived is the machine-readable form of the computed display values.
// Undefined ratios are null.
type Derived struct {
	Price                string   `json:"price"`
	PriceZeros           int      `json:"priceZeros,omitempty"`
	PriceDigits          string   `json:"priceDigits,omitempty"`
	Valuation            string   `json:"valuation"`
	ValuationIsFDV       bool     `json:"valuationIsFdv"`
	Liquidity            string   `json:"liquidity"`
	Volume24h            string   `json:"volume24h"`
	VolumeToMarketCap    *float64 `json:"volumeToMarketCap"`
	LiquidityToMarketCap *float64 `json:"liquidityToMarketCap"`
	LiquidityTurnover    *float64 `json:"liquidityTurnover"`
	VolumeBand           string   `json:"volumeBand"`
	LiquidityBand        string   `json:"liquidityBand"`
	TurnoverBand         string   `json:"turnoverBand"`
	ChartURL             string   `json:"chartUrl"`
	BubbleMapURL         string   `json:"bubbleMapUrl"`
	PumpFun              bool     `json:"pumpFun"`
}

// NewDerived computes the derived values for a snapshot.
func NewDerived(s *models.TokenSnapshot) Derived {
	if s == nil {
		return Derived{}
	}
	price := FormatMicroPrice(s.PriceUSD)
	valuation := s.Valuation
	r := RatiosFor(s)
	volBand, _ := r.VolumeBand()
	liqBand, _ := r.LiquidityBand()
	turnBand, _ := r.TurnoverBand()

	return Derived{
		Price:                price.Display,
		PriceZeros:           price.Zeros,
		PriceDigits:          price.Digits,
		Valuation:            FormatCompactCurrency(&valuation),
		ValuationIsFDV:       s.IsFDV,
		Liquidity:            FormatCompactCurrency(s.Liquidity),
		Volume24h:            FormatCompactCurrency(&s.Volume.H24),
		VolumeToMarketCap:    r.VolumeToMarketCap.ptr(),
		LiquidityToMarketCap: r.LiquidityToMarketCap.ptr(),
		LiquidityTurnover:    r.LiquidityTurnover.ptr(),
		VolumeBand:           volBand,
		LiquidityBand:        liqBand,
		TurnoverBand:         turnBand,
		ChartURL:             ChartURL(s.Chain, s.BaseToken.Address),
		BubbleMapURL:         BubbleMapURL(s.Chain, s.BaseToken.Address),
		PumpFun:              IsPumpFun(s.PairAddress),
	}
}

func (r Ratio) ptr() *float64 {
	if !r.Defined {
		return nil
	}
	v := r.Value
	return &v
}
