package indicator

import (
	"math"
	"testing"

	"StockScope/internal/series"
)

func TestBollinger_BandWidth(t *testing.T) {
	out := Bollinger(bars(1, 2, 3, 4, 5), 3, 2)
	if len(out) != 3 {
		t.Fatalf("expected 3 band points, got %d", len(out))
	}
	// Each window {n-1,n,n+1} has mean n and population sigma sqrt(2/3).
	sigma := math.Sqrt(2.0 / 3.0)
	wantMiddle := []float64{2, 3, 4}
	for i, b := range out {
		if !almostEqual(b.Middle, wantMiddle[i]) {
			t.Errorf("band %d: expected middle %.1f, got %.6f", i, wantMiddle[i], b.Middle)
		}
		if !almostEqual(b.Upper-b.Lower, 4*sigma) {
			t.Errorf("band %d: expected width %.6f, got %.6f", i, 4*sigma, b.Upper-b.Lower)
		}
		if series.DayKey(b.Date) != series.DayKey(day(i+2)) {
			t.Errorf("band %d: wrong date %s", i, series.DayKey(b.Date))
		}
	}
}

func TestBollinger_MiddleMatchesSMA(t *testing.T) {
	points := bars(10, 12, 11, 13, 15, 14, 16)
	out := Bollinger(points, 4, 2)
	sma := SMA(points, 4)
	smaByDay := make(map[string]float64)
	for _, p := range sma {
		if p.Valid {
			smaByDay[series.DayKey(p.Date)] = p.Value
		}
	}
	for _, b := range out {
		if !almostEqual(b.Middle, smaByDay[series.DayKey(b.Date)]) {
			t.Errorf("%s: middle %.6f != SMA %.6f", series.DayKey(b.Date), b.Middle, smaByDay[series.DayKey(b.Date)])
		}
	}
}

func TestBollinger_ConstantSeriesCollapses(t *testing.T) {
	out := Bollinger(bars(5, 5, 5, 5), 3, 2)
	for i, b := range out {
		if !almostEqual(b.Upper, 5) || !almostEqual(b.Lower, 5) {
			t.Errorf("band %d: zero-variance window must collapse to the mean, got %.6f/%.6f", i, b.Lower, b.Upper)
		}
	}
}

func TestBollinger_InsufficientData(t *testing.T) {
	if out := Bollinger(bars(1, 2), 3, 2); out != nil {
		t.Errorf("expected nil, got %d band points", len(out))
	}
}
