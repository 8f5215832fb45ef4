package model

import (
	"time"

	"StockScope/internal/series"
)

// Analysis is one immutable snapshot of every indicator computed for a
// symbol. It is produced fresh per request and never mutated afterwards.
type Analysis struct {
	ID         string
	Symbol     string
	ComputedAt time.Time

	Points []PricePoint

	SMAFast []series.Point
	SMASlow []series.Point

	RSI      []series.Point
	RSIBands []BandPoint

	MACD MACDResult

	Bollinger []BandPoint

	Fibonacci *FibonacciResult

	Signals []Signal
	Zones   []Zone
	Peaks   []Peak
}

// LatestSignals returns the signals dated on the final bar of the series,
// the ones worth alerting on after a refresh.
func (a *Analysis) LatestSignals() []Signal {
	if len(a.Points) == 0 {
		return nil
	}
	last := series.DayKey(a.Points[len(a.Points)-1].Date)
	var out []Signal
	for _, s := range a.Signals {
		if series.DayKey(s.Date) == last {
			out = append(out, s)
		}
	}
	return out
}
