package recorder

import "StockScope/internal/model"

// Recorder persists raw price history and a log of analysis runs. Computed
// indicator values are intentionally not stored; they are recomputed from the
// cached bars on demand.
type Recorder interface {
	SaveDailyBars(symbol string, bars []model.PricePoint) error
	LoadDailyBars(symbol string, limit int) ([]model.PricePoint, error)
	RecordRun(a *model.Analysis) error
	Close() error
}
