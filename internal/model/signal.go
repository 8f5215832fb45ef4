package model

import "time"

// SignalKind indicates what kind of event a Signal marks.
type SignalKind string

const (
	SignalBuy            SignalKind = "buy"
	SignalSell           SignalKind = "sell"
	SignalGolden         SignalKind = "golden"
	SignalDeath          SignalKind = "death"
	SignalBullDivergence SignalKind = "bull-divergence"
	SignalBearDivergence SignalKind = "bear-divergence"
)

// Signal is a dated chart event. AnchorValue is the price or oscillator value
// the marker is drawn at.
type Signal struct {
	Date        time.Time
	Kind        SignalKind
	AnchorValue float64
}

// ZoneKind is the trend polarity of a crossover zone.
type ZoneKind string

const (
	ZoneGolden ZoneKind = "golden"
	ZoneDeath  ZoneKind = "death"
)

// Zone is a contiguous span where the fast moving average stays on one side
// of the slow one. Zones are emitted in date order and never overlap.
type Zone struct {
	Start time.Time
	End   time.Time
	Kind  ZoneKind
}
