package display

import (
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

// FibRow is one retracement level, listed from the recent high down.
type FibRow struct {
	Percent  string // e.g. "61.8%"
	NoteKey  string // optional label key: fib.high, fib.golden, fib.low
	Price    string
	Tone     string // CSS hint per level
	BarWidth int    // percent, 100 for the top row down to 0
}

// FibonacciRows lists levels 100% to 0% with prices to ten decimals,
// trailing zeros trimmed.
func FibonacciRows(f models.FibonacciLevels) []FibRow {
	rows := []FibRow{
		{Percent: "100.0%", NoteKey: "fib.high", Price: fibPrice(f.Level100), Tone: "fib-100"},
		{Percent: "78.6%", Price: fibPrice(f.Level786), Tone: "fib-786"},
		{Percent: "61.8%", NoteKey: "fib.golden", Price: fibPrice(f.Level618), Tone: "fib-618"},
		{Percent: "50.0%", Price: fibPrice(f.Level500), Tone: "fib-500"},
		{Percent: "38.2%", Price: fibPrice(f.Level382), Tone: "fib-382"},
		{Percent: "23.6%", Price: fibPrice(f.Level236), Tone: "fib-236"},
		{Percent: "0.0%", NoteKey: "fib.low", Price: fibPrice(f.Level0), Tone: "fib-0"},
	}
	last := len(rows) - 1
	for i := range rows {
		rows[i].BarWidth = (last - i) * 100 / last
	}
	return rows
}

func fibPrice(v float64) string {
	return "$" + trimFraction(decimal.NewFromFloat(v).StringFixed(10))
}
