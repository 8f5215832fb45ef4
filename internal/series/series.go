package series

import "time"

// Point is one dated indicator value. Valid is false for points inside an
// indicator's warmup window, where the value is undefined rather than zero.
type Point struct {
	Date  time.Time
	Value float64
	Valid bool
}

// DayKey returns the canonical calendar-day join key for a timestamp.
// Every emitted series is keyed by this representation so that downstream
// consumers can overlay series from different indicators on one timeline;
// display formatting is left to the presentation layer.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Pair is one date where two joined series are both defined.
type Pair struct {
	Date time.Time
	A    float64
	B    float64
}

// JoinByDate aligns two series on their calendar-day keys and returns the
// pairs where both sides are defined, in a's date order. Derived series start
// at different offsets (an EMA(200) begins 200 bars after the raw series), so
// components combining two series must join by date, never by position.
func JoinByDate(a, b []Point) []Pair {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	byDay := make(map[string]float64, len(b))
	for _, p := range b {
		if p.Valid {
			byDay[DayKey(p.Date)] = p.Value
		}
	}
	pairs := make([]Pair, 0, len(a))
	for _, p := range a {
		if !p.Valid {
			continue
		}
		if v, ok := byDay[DayKey(p.Date)]; ok {
			pairs = append(pairs, Pair{Date: p.Date, A: p.Value, B: v})
		}
	}
	return pairs
}

// Valid returns only the defined points of a series, preserving order.
func Valid(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Valid {
			out = append(out, p)
		}
	}
	return out
}
