package indicator

import (
	"time"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// MACD computes the Moving Average Convergence Divergence of the close
// series: macd = EMA(fast) - EMA(slow) at the dates where both are defined,
// signal = EMA(macd, signalPeriod) treating the MACD line as a close series,
// histogram = macd - signal. Requires at least slow+signalPeriod points;
// otherwise an empty result is returned.
func MACD(points []model.PricePoint, fast, slow, signalPeriod int) model.MACDResult {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 || len(points) < slow+signalPeriod {
		return model.MACDResult{}
	}

	fastEMA := EMA(points, fast)
	slowEMA := EMA(points, slow)

	macdLine := diffByDate(fastEMA, slowEMA)
	if len(macdLine) == 0 {
		return model.MACDResult{}
	}

	ds := make([]time.Time, len(macdLine))
	values := make([]float64, len(macdLine))
	for i, p := range macdLine {
		ds[i] = p.Date
		values[i] = p.Value
	}
	signalLine := emaCore(ds, values, signalPeriod)

	return model.MACDResult{
		MACDLine:   macdLine,
		SignalLine: signalLine,
		Histogram:  diffByDate(macdLine, signalLine),
	}
}

// diffByDate subtracts b from a at the dates where both are defined.
func diffByDate(a, b []series.Point) []series.Point {
	pairs := series.JoinByDate(a, b)
	out := make([]series.Point, len(pairs))
	for i, p := range pairs {
		out[i] = series.Point{Date: p.Date, Value: p.A - p.B, Valid: true}
	}
	return out
}
