package notifier

import (
	"strings"
	"testing"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

func testAnalysis() *model.Analysis {
	d0 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	return &model.Analysis{
		Symbol:     "SPX500",
		ComputedAt: d0.AddDate(0, 0, 1),
		Points: []model.PricePoint{
			{Date: d0, Close: 5300},
			{Date: d0.AddDate(0, 0, 1), Close: 5350},
		},
		SMAFast: []series.Point{{Date: d0, Value: 5280, Valid: true}},
		Zones:   []model.Zone{{Start: d0, End: d0.AddDate(0, 0, 1), Kind: model.ZoneGolden}},
		Signals: []model.Signal{{Date: d0.AddDate(0, 0, 1), Kind: model.SignalGolden, AnchorValue: 5350}},
	}
}

func TestFormatSignalAlert(t *testing.T) {
	a := testAnalysis()
	msg := FormatSignalAlert(a, a.Signals)
	if msg == "" {
		t.Fatal("expected a non-empty alert")
	}
	for _, want := range []string{"SPX500", "Golden cross", "5350.00", "2024-06-04", "Last close: 5350.00"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatSignalAlert_NoSignals(t *testing.T) {
	if msg := FormatSignalAlert(testAnalysis(), nil); msg != "" {
		t.Errorf("expected empty message, got %q", msg)
	}
}

func TestFormatSignalAlert_UnknownKindFallsBack(t *testing.T) {
	a := testAnalysis()
	signals := []model.Signal{{Date: a.ComputedAt, Kind: model.SignalKind("custom"), AnchorValue: 1}}
	msg := FormatSignalAlert(a, signals)
	if !strings.Contains(msg, "custom") {
		t.Errorf("unknown kinds must print their raw name:\n%s", msg)
	}
}

func TestFormatSummary(t *testing.T) {
	msg := FormatSummary(testAnalysis())
	for _, want := range []string{"SPX500", "2 bars", "SMA fast: 5280.00", "Current zone: golden", "Signals in window: 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("summary missing %q:\n%s", want, msg)
		}
	}
	// Undefined indicators are simply omitted.
	if strings.Contains(msg, "RSI:") {
		t.Error("summary must omit indicators with no defined value")
	}
}
