package display

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDerived(t *testing.T) {
	s := testSnapshot()
	s.Liquidity = nil
	d := NewDerived(s)

	if d.Price != "$0.0₍₅₎123" || d.PriceZeros != 5 || d.PriceDigits != "123" {
		t.Errorf("unexpected price %+v", d)
	}
	if !d.ValuationIsFDV || d.Valuation != "$1.00M" {
		t.Errorf("expected FDV valuation, got %s %v", d.Valuation, d.ValuationIsFDV)
	}
	if d.VolumeToMarketCap == nil || *d.VolumeToMarketCap != 3 {
		t.Errorf("unexpected vol/mc %v", d.VolumeToMarketCap)
	}
	if d.LiquidityTurnover != nil {
		t.Error("turnover without liquidity should be null")
	}
	if d.TurnoverBand != BandNA {
		t.Errorf("expected n/a band, got %s", d.TurnoverBand)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"liquidityTurnover":null`) {
		t.Errorf("expected null turnover in %s", b)
	}
}

func TestNewDerived_Nil(t *testing.T) {
	if d := NewDerived(nil); d.Price != "" {
		t.Errorf("expected zero value, got %+v", d)
	}
}
