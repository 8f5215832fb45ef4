package indicator

import (
	"testing"

	"StockScope/internal/series"
)

func TestRSI_MonotonicRiseIs100(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := RSI(bars(closes...), 14)
	if len(out) != 15 {
		t.Fatalf("expected 15 aligned points, got %d", len(out))
	}
	for i := 0; i < 14; i++ {
		if out[i].Valid {
			t.Errorf("point %d is before the first evaluable index, expected invalid", i)
		}
	}
	if !out[14].Valid {
		t.Fatal("expected point 14 to be defined")
	}
	if out[14].Value != 100 {
		t.Errorf("all-gain series must yield RSI 100, got %.4f", out[14].Value)
	}
}

func TestRSI_WilderRecursion(t *testing.T) {
	// period 2, closes 1,2,3,2,2 → changes +1,+1,-1,0.
	// Seed: avgGain=1, avgLoss=0 → RSI=100 at index 2.
	// Index 3: avgGain=0.5, avgLoss=0.5 → RSI=50.
	// Index 4: avgGain=0.25, avgLoss=0.25 → RSI=50.
	out := RSI(bars(1, 2, 3, 2, 2), 2)
	want := []struct {
		idx int
		val float64
	}{
		{2, 100},
		{3, 50},
		{4, 50},
	}
	for _, w := range want {
		p := out[w.idx]
		if !p.Valid || !almostEqual(p.Value, w.val) {
			t.Errorf("index %d: expected %.1f, got %.4f (valid=%v)", w.idx, w.val, p.Value, p.Valid)
		}
	}
}

func TestRSI_Bounds(t *testing.T) {
	closes := []float64{10, 12, 8, 15, 7, 18, 6, 20, 5, 22}
	out := RSI(bars(closes...), 3)
	for i, p := range out {
		if !p.Valid {
			continue
		}
		if p.Value < 0 || p.Value > 100 {
			t.Errorf("index %d: RSI %.4f out of [0,100]", i, p.Value)
		}
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	// period+1 points are required.
	if out := RSI(bars(1, 2, 3), 3); out != nil {
		t.Errorf("expected nil for 3 points with period 3, got %d points", len(out))
	}
}

func TestRSISmoothing_Warmup(t *testing.T) {
	rsi := make([]series.Point, 7)
	for i := range rsi {
		// First two points undefined, then constant 50.
		rsi[i] = series.Point{Date: day(i), Value: 50, Valid: i >= 2}
	}
	out := RSISmoothing(rsi, 3, 2)
	// 5 defined RSI values, lookback 3 → 3 band points.
	if len(out) != 3 {
		t.Fatalf("expected 3 band points, got %d", len(out))
	}
	for i, b := range out {
		if !almostEqual(b.Middle, 50) || !almostEqual(b.Upper, 50) || !almostEqual(b.Lower, 50) {
			t.Errorf("band %d: constant input must collapse the bands, got %.2f/%.2f/%.2f", i, b.Lower, b.Middle, b.Upper)
		}
	}
	if series.DayKey(out[0].Date) != series.DayKey(day(4)) {
		t.Errorf("first band must sit at the third defined RSI value, got %s", series.DayKey(out[0].Date))
	}
}

func TestRSISmoothing_InsufficientData(t *testing.T) {
	rsi := []series.Point{
		{Date: day(0), Value: 40, Valid: true},
		{Date: day(1), Value: 60, Valid: true},
	}
	if out := RSISmoothing(rsi, 3, 2); out != nil {
		t.Errorf("expected nil, got %d band points", len(out))
	}
}
