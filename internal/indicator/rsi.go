package indicator

import (
	"math"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// RSI computes the Wilder-smoothed Relative Strength Index of the close
// series. Requires at least period+1 points; the first defined value sits at
// index period. Output values are always within [0,100].
func RSI(points []model.PricePoint, period int) []series.Point {
	if period <= 0 || len(points) < period+1 {
		return nil
	}
	closes := model.Closes(points)
	out := make([]series.Point, len(points))
	for i, p := range points {
		out[i] = series.Point{Date: p.Date}
	}

	// Seed averages over the first period day-over-day changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = series.Point{Date: points[period].Date, Value: rsiValue(avgGain, avgLoss), Valid: true}

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = series.Point{Date: points[i].Date, Value: rsiValue(avgGain, avgLoss), Valid: true}
	}
	return out
}

// rsiValue maps smoothed averages to the bounded oscillator value. A zero
// average loss means RSI=100 directly, bypassing the division.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	rsi := 100.0 - 100.0/(1.0+rs)
	if rsi < 0 {
		return 0
	}
	if rsi > 100 {
		return 100
	}
	return rsi
}

// RSISmoothing overlays an RSI series with its own SMA and standard-deviation
// bands: middle = SMA(rsi, lookback), upper/lower = middle ± mult·σ, where σ
// is the population standard deviation of the same trailing window. Points
// before lookback RSI values have accumulated are not emitted.
func RSISmoothing(rsi []series.Point, lookback int, mult float64) []model.BandPoint {
	defined := series.Valid(rsi)
	if lookback <= 0 || len(defined) < lookback {
		return nil
	}
	out := make([]model.BandPoint, 0, len(defined)-lookback+1)
	for i := lookback - 1; i < len(defined); i++ {
		window := defined[i-lookback+1 : i+1]
		mean, sigma := meanStdPoints(window)
		out = append(out, model.BandPoint{
			Date:   defined[i].Date,
			Middle: mean,
			Upper:  mean + mult*sigma,
			Lower:  mean - mult*sigma,
		})
	}
	return out
}

func meanStdPoints(window []series.Point) (mean, sigma float64) {
	for _, p := range window {
		mean += p.Value
	}
	mean /= float64(len(window))
	var variance float64
	for _, p := range window {
		d := p.Value - mean
		variance += d * d
	}
	variance /= float64(len(window))
	return mean, math.Sqrt(variance)
}
