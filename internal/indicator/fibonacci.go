package indicator

import "StockScope/internal/model"

// fibRatios are the fixed retracement ratios, ordered from the window low
// ("100%") up to the window high ("0%").
var fibRatios = []model.FibLevel{
	{Label: "100%(Low)", Ratio: 1.0},
	{Label: "78.6%", Ratio: 0.786},
	{Label: "61.8%", Ratio: 0.618},
	{Label: "50%", Ratio: 0.5},
	{Label: "38.2%", Ratio: 0.382},
	{Label: "23.6%", Ratio: 0.236},
	{Label: "0%(High)", Ratio: 0.0},
}

// Fibonacci computes retracement levels once over the entire supplied window:
// high and low are the extreme closes, and each level is high - diff*ratio,
// so the "100%(Low)" level equals the low exactly and "0%(High)" the high.
// Returns nil when fewer than 2 closes are available.
func Fibonacci(points []model.PricePoint) *model.FibonacciResult {
	if len(points) < 2 {
		return nil
	}
	high := points[0].Close
	low := points[0].Close
	for _, p := range points[1:] {
		if p.Close > high {
			high = p.Close
		}
		if p.Close < low {
			low = p.Close
		}
	}
	diff := high - low
	levels := make([]model.FibLevel, len(fibRatios))
	for i, l := range fibRatios {
		levels[i] = model.FibLevel{Label: l.Label, Ratio: l.Ratio, Value: high - diff*l.Ratio}
	}
	return &model.FibonacciResult{High: high, Low: low, Levels: levels}
}
