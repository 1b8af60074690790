package display

import "math"

// NormalizePercent reads a model-supplied percentage that may be a 0-1
// fraction or a 0-100 value. Values in (0, 1] are fractions, so 1.0 reads as
// 100%. The result is rounded and clamped to [0, 100]; NaN yields 0.
func NormalizePercent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if v > 0 && v <= 1 {
		v *= 100
	}
	r := math.Round(v)
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	}
	return int(r)
}

// WallSplit normalises buy and sell wall strengths to shares of 100.
// When both are zero the buy share is 0 and the sell share 100.
func WallSplit(buy, sell float64) (buyPct, sellPct int) {
	if math.IsNaN(buy) || buy < 0 {
		buy = 0
	}
	if math.IsNaN(sell) || sell < 0 {
		sell = 0
	}
	total := buy + sell
	if total == 0 {
		total = 1
	}
	buyPct = int(math.Round(buy / total * 100))
	return buyPct, 100 - buyPct
}

// KOLTrend derives seven bar heights (percent) from the current influencer
// support value. The shape is fixed; only the scale follows the input.
func KOLTrend(support float64) []int {
	base := float64(NormalizePercent(support))
	shape := []float64{0.7, 0.82, 0.75, 0.9, 0.85, 0.95, 1}
	bars := make([]int, len(shape))
	for i, m := range shape {
		h := math.Round(base * m)
		if h < 15 {
			h = 15
		}
		if h > 100 {
			h = 100
		}
		bars[i] = int(h)
	}
	return bars
}
