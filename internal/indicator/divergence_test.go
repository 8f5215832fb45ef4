package indicator

import (
	"testing"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

func oscSeries(values ...float64) []series.Point {
	return maSeries(values...)
}

func divPrices(lows, highs []float64) []model.PricePoint {
	points := make([]model.PricePoint, len(lows))
	for i := range lows {
		points[i] = model.PricePoint{Date: day(i), Close: (lows[i] + highs[i]) / 2, Low: lows[i], High: highs[i]}
	}
	return points
}

func TestDivergence_BullishOnCloseFallback(t *testing.T) {
	// Price lows come from the close when the bar carries no low. Pivot lows
	// at index 1 (osc 1, close 10) and index 3 (osc 2, close 8): price makes a
	// lower low while the oscillator makes a higher one.
	rsi := oscSeries(5, 1, 5, 2, 5)
	prices := bars(11, 10, 11, 8, 11)

	signals := Divergence(rsi, prices, 1, 1)
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	s := signals[0]
	if s.Kind != model.SignalBullDivergence {
		t.Errorf("expected bull divergence, got %s", s.Kind)
	}
	if series.DayKey(s.Date) != series.DayKey(day(3)) {
		t.Errorf("signal must sit at the confirming pivot, got %s", series.DayKey(s.Date))
	}
	if !almostEqual(s.AnchorValue, 2) {
		t.Errorf("signal must anchor at the oscillator value, got %.2f", s.AnchorValue)
	}
}

func TestDivergence_Bearish(t *testing.T) {
	// Pivot highs at index 1 (osc 5, high 10) and index 3 (osc 4, high 12):
	// higher price high, lower oscillator high.
	rsi := oscSeries(1, 5, 1, 4, 1)
	prices := divPrices(
		[]float64{5, 5, 5, 5, 5},
		[]float64{9, 10, 9, 12, 9},
	)
	signals := Divergence(rsi, prices, 1, 1)
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if signals[0].Kind != model.SignalBearDivergence {
		t.Errorf("expected bear divergence, got %s", signals[0].Kind)
	}
	if !almostEqual(signals[0].AnchorValue, 4) {
		t.Errorf("expected anchor 4, got %.2f", signals[0].AnchorValue)
	}
}

func TestDivergence_LeftTieStillPivots(t *testing.T) {
	// A left neighbor equal to the candidate does not disqualify the pivot.
	rsi := oscSeries(1, 1, 5, 2, 5)
	prices := bars(10, 9, 11, 8, 11)
	signals := Divergence(rsi, prices, 1, 1)
	if len(signals) != 1 || signals[0].Kind != model.SignalBullDivergence {
		t.Fatalf("expected the left-tied bar to count as a pivot, got %v", signals)
	}
}

func TestDivergence_RightTiePostponesPivot(t *testing.T) {
	// Index 1 ties with its right neighbor and is not a pivot; index 2 is.
	rsi := oscSeries(5, 1, 1, 5, 2, 5)
	prices := bars(11, 10, 10, 11, 8, 11)
	signals := Divergence(rsi, prices, 1, 1)
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if series.DayKey(signals[0].Date) != series.DayKey(day(4)) {
		t.Errorf("expected confirmation on day 4, got %s", series.DayKey(signals[0].Date))
	}
}

func TestDivergence_ComparesOnlyMostRecentPivot(t *testing.T) {
	// Pivot lows at 1 (osc 2, low 10), 3 (osc 1, low 7), 5 (osc 3, low 8).
	// Against pivot 1 the last low would diverge, but only pivot 3 counts,
	// and 8 is not a lower low than 7.
	rsi := oscSeries(9, 2, 9, 1, 9, 3, 9)
	prices := divPrices(
		[]float64{11, 10, 11, 7, 11, 8, 11},
		[]float64{20, 20, 20, 20, 20, 20, 20},
	)
	signals := Divergence(rsi, prices, 1, 1)
	if len(signals) != 0 {
		t.Fatalf("stale pivots must not be compared, got %v", signals)
	}
}

func TestDivergence_InsufficientData(t *testing.T) {
	rsi := oscSeries(5, 1, 5)
	if signals := Divergence(rsi, bars(1, 2, 3), 2, 2); signals != nil {
		t.Error("expected nil when the window does not fit")
	}
	if signals := Divergence(rsi, bars(1, 2, 3), 0, 1); signals != nil {
		t.Error("expected nil for non-positive lookback")
	}
}
