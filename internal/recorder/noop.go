package recorder

import "StockScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) SaveDailyBars(_ string, _ []model.PricePoint) error { return nil }
func (n *NoopRecorder) LoadDailyBars(_ string, _ int) ([]model.PricePoint, error) {
	return nil, nil
}
func (n *NoopRecorder) RecordRun(_ *model.Analysis) error { return nil }
func (n *NoopRecorder) Close() error                      { return nil }
