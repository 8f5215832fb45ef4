package model

import (
	"time"

	"StockScope/internal/series"
)

// BandPoint is one dated value of a band overlay (Bollinger, RSI bands).
// Band series only contain defined points; warmup bars are not emitted.
type BandPoint struct {
	Date   time.Time
	Upper  float64
	Middle float64
	Lower  float64
}

// MACDResult bundles the three MACD output series, mutually date-aligned.
// The histogram is what the default dashboard view draws, but all three are
// exposed for reuse.
type MACDResult struct {
	MACDLine   []series.Point
	SignalLine []series.Point
	Histogram  []series.Point
}

// FibLevel is a single retracement level. The percentage labels follow chart
// convention: "100%(Low)" is the window low, "0%(High)" the window high.
type FibLevel struct {
	Label string
	Ratio float64
	Value float64
}

// FibonacciResult holds retracement levels computed once over the whole
// window, ordered from 100%(Low) up to 0%(High).
type FibonacciResult struct {
	High   float64
	Low    float64
	Levels []FibLevel
}

// PeakKind distinguishes period highs from period lows.
type PeakKind string

const (
	PeakHigh PeakKind = "periodHigh"
	PeakLow  PeakKind = "periodLow"
)

// Period is the bucketing granularity for extrema aggregation.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Peak marks the extreme bar of one week/month/year bucket, carrying that
// bar's own date rather than the bucket boundary.
type Peak struct {
	Date   time.Time
	Kind   PeakKind
	Period Period
	Value  float64
}
