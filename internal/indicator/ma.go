package indicator

import (
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// SMA computes the simple moving average of the close series over the given
// period. The output is aligned with the input: points before index period-1
// are marked invalid. Returns nil when there is not enough data.
func SMA(points []model.PricePoint, period int) []series.Point {
	return smaCore(dates(points), model.Closes(points), period)
}

// EMA computes the exponential moving average of the close series. The seed
// value is the arithmetic mean of the first period closes, emitted at index
// period-1; later points follow ema = close*k + prev*(1-k) with k = 2/(period+1).
// Returns nil when there is not enough data.
func EMA(points []model.PricePoint, period int) []series.Point {
	return emaCore(dates(points), model.Closes(points), period)
}

func smaCore(ds []time.Time, values []float64, period int) []series.Point {
	if period <= 0 || len(values) < period {
		return nil
	}
	out := make([]series.Point, len(values))
	// Running window sum: add the value entering the window, subtract the
	// one leaving it.
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		out[i] = series.Point{Date: ds[i]}
		if i >= period-1 {
			out[i].Value = sum / float64(period)
			out[i].Valid = true
		}
	}
	return out
}

func emaCore(ds []time.Time, values []float64, period int) []series.Point {
	if period <= 0 || len(values) < period {
		return nil
	}
	out := make([]series.Point, len(values))
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
		out[i] = series.Point{Date: ds[i]}
	}
	ema := seed / float64(period)
	out[period-1] = series.Point{Date: ds[period-1], Value: ema, Valid: true}

	k := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1.0-k)
		out[i] = series.Point{Date: ds[i], Value: ema, Valid: true}
	}
	return out
}

func dates(points []model.PricePoint) []time.Time {
	ds := make([]time.Time, len(points))
	for i, p := range points {
		ds[i] = p.Date
	}
	return ds
}
