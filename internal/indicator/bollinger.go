package indicator

import (
	"math"

	"StockScope/internal/model"
)

// Bollinger computes volatility bands over the close series: middle is the
// period SMA, upper/lower sit devs population standard deviations away. Only
// defined points (index >= period-1) are emitted; returns nil when there is
// not enough data.
func Bollinger(points []model.PricePoint, period int, devs float64) []model.BandPoint {
	if period <= 0 || len(points) < period {
		return nil
	}
	closes := model.Closes(points)
	out := make([]model.BandPoint, 0, len(points)-period+1)
	for i := period - 1; i < len(closes); i++ {
		window := closes[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)
		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		sigma := math.Sqrt(variance / float64(period))
		out = append(out, model.BandPoint{
			Date:   points[i].Date,
			Middle: mean,
			Upper:  mean + devs*sigma,
			Lower:  mean - devs*sigma,
		})
	}
	return out
}
