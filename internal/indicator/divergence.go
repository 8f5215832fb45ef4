package indicator

import (
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// divergenceBar is one date where both the oscillator and the raw price
// series are defined.
type divergenceBar struct {
	date      time.Time
	osc       float64
	priceLow  float64
	priceHigh float64
}

// Divergence detects price/oscillator divergences on an RSI series joined
// with the raw price series. A bar is a pivot low of the oscillator when
// every left neighbor within lookbackLeft is >= its value and every right
// neighbor within lookbackRight is strictly greater; pivot highs mirror this
// (left <=, right strictly <). The left/right asymmetry is intentional and
// must not be evened out: it changes which bars qualify.
//
// Each new pivot is compared against only the most recent pivot of the same
// polarity. A bullish divergence fires when price makes a lower low while the
// oscillator makes a higher low; bearish mirrors it on highs. Signals are
// anchored at the oscillator value of the confirming bar. Price lows/highs
// use the bar's low/high when present, falling back to close.
func Divergence(rsi []series.Point, prices []model.PricePoint, lookbackLeft, lookbackRight int) []model.Signal {
	if lookbackLeft <= 0 || lookbackRight <= 0 {
		return nil
	}
	bars := joinDivergenceBars(rsi, prices)
	n := len(bars)
	if n < lookbackLeft+lookbackRight+1 {
		return nil
	}

	var signals []model.Signal
	var lastLow, lastHigh *divergenceBar

	for i := lookbackLeft; i < n-lookbackRight; i++ {
		if isPivotLow(bars, i, lookbackLeft, lookbackRight) {
			cur := bars[i]
			if lastLow != nil && cur.priceLow < lastLow.priceLow && cur.osc > lastLow.osc {
				signals = append(signals, model.Signal{Date: cur.date, Kind: model.SignalBullDivergence, AnchorValue: cur.osc})
			}
			lastLow = &bars[i]
		}
		if isPivotHigh(bars, i, lookbackLeft, lookbackRight) {
			cur := bars[i]
			if lastHigh != nil && cur.priceHigh > lastHigh.priceHigh && cur.osc < lastHigh.osc {
				signals = append(signals, model.Signal{Date: cur.date, Kind: model.SignalBearDivergence, AnchorValue: cur.osc})
			}
			lastHigh = &bars[i]
		}
	}
	return signals
}

func isPivotLow(bars []divergenceBar, i, left, right int) bool {
	v := bars[i].osc
	for j := 1; j <= left; j++ {
		if bars[i-j].osc < v {
			return false
		}
	}
	for j := 1; j <= right; j++ {
		if bars[i+j].osc <= v {
			return false
		}
	}
	return true
}

func isPivotHigh(bars []divergenceBar, i, left, right int) bool {
	v := bars[i].osc
	for j := 1; j <= left; j++ {
		if bars[i-j].osc > v {
			return false
		}
	}
	for j := 1; j <= right; j++ {
		if bars[i+j].osc >= v {
			return false
		}
	}
	return true
}

func joinDivergenceBars(rsi []series.Point, prices []model.PricePoint) []divergenceBar {
	byDay := make(map[string]model.PricePoint, len(prices))
	for _, p := range prices {
		byDay[series.DayKey(p.Date)] = p
	}
	bars := make([]divergenceBar, 0, len(rsi))
	for _, r := range rsi {
		if !r.Valid {
			continue
		}
		p, ok := byDay[series.DayKey(r.Date)]
		if !ok {
			continue
		}
		bars = append(bars, divergenceBar{
			date:      r.Date,
			osc:       r.Value,
			priceLow:  p.LowOrClose(),
			priceHigh: p.HighOrClose(),
		})
	}
	return bars
}
