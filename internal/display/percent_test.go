package display

import (
	"math"
	"testing"
)

func TestNormalizePercent_Rule(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.42, 42},
		{0.999, 100},
		{1, 100}, // 1.0 reads as a fraction
		{1.4, 1},
		{42, 42},
		{42.6, 43},
		{100, 100},
		{150, 100},
		{-5, 0},
		{-0.5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := NormalizePercent(c.in); got != c.want {
			t.Errorf("NormalizePercent(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizePercent_IdempotentOnNormalizedIntegers(t *testing.T) {
	// 1 is excluded: it is read as the fraction 1.0.
	for n := 2; n <= 100; n++ {
		once := NormalizePercent(float64(n))
		twice := NormalizePercent(float64(once))
		if once != n || twice != once {
			t.Errorf("n=%d: once=%d twice=%d", n, once, twice)
		}
	}
	if NormalizePercent(float64(NormalizePercent(0))) != 0 {
		t.Error("expected 0 to stay 0")
	}
}

func TestWallSplit(t *testing.T) {
	cases := []struct {
		buy, sell    float64
		wantB, wantS int
	}{
		{60, 40, 60, 40},
		{0.7, 0.3, 70, 30},
		{3, 1, 75, 25},
		{0, 0, 0, 100},
		{-5, 10, 0, 100},
		{math.NaN(), 1, 0, 100},
		{1, 2, 33, 67},
	}
	for _, c := range cases {
		b, s := WallSplit(c.buy, c.sell)
		if b != c.wantB || s != c.wantS {
			t.Errorf("WallSplit(%v, %v) = %d/%d, want %d/%d", c.buy, c.sell, b, s, c.wantB, c.wantS)
		}
		if b+s != 100 {
			t.Errorf("WallSplit(%v, %v) does not sum to 100", c.buy, c.sell)
		}
	}
}

func TestKOLTrend(t *testing.T) {
	bars := KOLTrend(80)
	want := []int{56, 66, 60, 72, 68, 76, 80}
	if len(bars) != len(want) {
		t.Fatalf("expected %d bars, got %d", len(want), len(bars))
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bar %d: got %d, want %d", i, bars[i], want[i])
		}
	}

	// Fraction input scales the same way.
	frac := KOLTrend(0.8)
	for i := range bars {
		if frac[i] != bars[i] {
			t.Errorf("bar %d: fraction input gave %d, want %d", i, frac[i], bars[i])
		}
	}
}

func TestKOLTrend_FloorAt15(t *testing.T) {
	for _, h := range KOLTrend(0) {
		if h != 15 {
			t.Errorf("expected floor 15, got %d", h)
		}
	}
}
