package display

import (
	"testing"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

func TestFibonacciRows(t *testing.T) {
	rows := FibonacciRows(models.FibonacciLevels{
		Level0:   0.000001,
		Level236: 0.0000012,
		Level382: 0.0000014,
		Level500: 0.0000015,
		Level618: 0.0000016,
		Level786: 0.0000018,
		Level100: 0.000002,
	})

	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0].Percent != "100.0%" || rows[0].NoteKey != "fib.high" || rows[0].BarWidth != 100 {
		t.Errorf("unexpected top row %+v", rows[0])
	}
	if rows[0].Price != "$0.000002" {
		t.Errorf("unexpected top price %q", rows[0].Price)
	}
	if rows[2].NoteKey != "fib.golden" {
		t.Errorf("61.8%% row should carry the golden note, got %+v", rows[2])
	}
	if rows[6].Percent != "0.0%" || rows[6].BarWidth != 0 || rows[6].NoteKey != "fib.low" {
		t.Errorf("unexpected bottom row %+v", rows[6])
	}
	if rows[3].BarWidth != 50 {
		t.Errorf("expected middle bar width 50, got %d", rows[3].BarWidth)
	}
}

func TestFibPrice_TrimsAndRounds(t *testing.T) {
	cases := map[float64]string{
		0:             "$0",
		1.5:           "$1.5",
		0.00000000001: "$0",
		0.12345678912: "$0.1234567891",
		// Rounds the shortest decimal form half away from zero, not the binary value.
		1.00000000005: "$1.0000000001",
		0.00000123:    "$0.00000123",
	}
	for in, want := range cases {
		if got := fibPrice(in); got != want {
			t.Errorf("fibPrice(%v) = %q, want %q", in, got, want)
		}
	}
}
