package collector

import "StockScope/internal/model"

// Fetcher retrieves daily price history for a symbol.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.PricePoint, error)
	Name() string
}
