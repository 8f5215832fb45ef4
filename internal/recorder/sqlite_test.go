package recorder

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"StockScope/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_BarsRoundTrip(t *testing.T) {
	r := openTestRecorder(t)
	d0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.PricePoint{
		{Date: d0, Close: 100, High: 101, Low: 99, Volume: 5000},
		{Date: d0.AddDate(0, 0, 1), Close: 102, High: math.NaN(), Low: math.NaN(), Volume: math.NaN()},
	}
	if err := r.SaveDailyBars("SPX500", bars); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := r.LoadDailyBars("SPX500", 10)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(got))
	}
	if !got[0].Date.Before(got[1].Date) {
		t.Error("expected ascending order")
	}
	if got[0].High != 101 || got[0].Close != 100 {
		t.Errorf("bar 0: got high=%.1f close=%.1f", got[0].High, got[0].Close)
	}
	// Absent fields round-trip as NaN, never as zero.
	if !math.IsNaN(got[1].High) || !math.IsNaN(got[1].Volume) {
		t.Errorf("expected NaN for absent fields, got high=%v volume=%v", got[1].High, got[1].Volume)
	}
}

func TestSQLiteRecorder_UpsertReplacesDay(t *testing.T) {
	r := openTestRecorder(t)
	d0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := r.SaveDailyBars("SPX500", []model.PricePoint{{Date: d0, Close: 100}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.SaveDailyBars("SPX500", []model.PricePoint{{Date: d0, Close: 105}}); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err := r.LoadDailyBars("SPX500", 10)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Close != 105 {
		t.Errorf("expected one bar with close 105, got %v", got)
	}
}

func TestSQLiteRecorder_LoadLimit(t *testing.T) {
	r := openTestRecorder(t)
	d0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var bars []model.PricePoint
	for i := 0; i < 5; i++ {
		bars = append(bars, model.PricePoint{Date: d0.AddDate(0, 0, i), Close: float64(100 + i)})
	}
	if err := r.SaveDailyBars("SPX500", bars); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := r.LoadDailyBars("SPX500", 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// The limit keeps the most recent days, returned ascending.
	if len(got) != 3 || got[0].Close != 102 || got[2].Close != 104 {
		t.Errorf("expected closes [102 103 104], got %v", got)
	}
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r := openTestRecorder(t)
	a := &model.Analysis{
		ID:         "run-1",
		Symbol:     "SPX500",
		ComputedAt: time.Now().UTC(),
		Signals:    []model.Signal{{Kind: model.SignalGolden}},
	}
	if err := r.RecordRun(a); err != nil {
		t.Fatalf("record run: %v", err)
	}
	// Duplicate id violates the primary key.
	if err := r.RecordRun(a); err == nil {
		t.Error("expected duplicate run id to fail")
	}
}
