package collector

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.PricePoint
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(100, days), nil
}

// GenerateMockBars builds a deterministic gently trending series.
func GenerateMockBars(basePrice float64, count int) []model.PricePoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PricePoint{
			Date:   start.AddDate(0, 0, i),
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// BarCache persists fetched daily bars so that analysis can keep working when
// the remote provider is down.
type BarCache interface {
	SaveDailyBars(symbol string, bars []model.PricePoint) error
	LoadDailyBars(symbol string, limit int) ([]model.PricePoint, error)
}

// Collector fetches, sanitizes and caches daily price history.
type Collector struct {
	Fetcher Fetcher
	Cache   BarCache // may be nil
	Days    int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, cache BarCache, days int) *Collector {
	return &Collector{Fetcher: fetcher, Cache: cache, Days: days}
}

// Collect returns the sanitized daily series for one symbol, falling back to
// the local cache when the remote fetch fails.
func (c *Collector) Collect(symbol string) ([]model.PricePoint, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.Days)
	if err != nil {
		if c.Cache == nil {
			return nil, fmt.Errorf("fetch daily bars: %w", err)
		}
		log.Printf("[WARN] fetch %s from %s failed: %v, trying cache", symbol, c.Fetcher.Name(), err)
		cached, cacheErr := c.Cache.LoadDailyBars(symbol, c.Days)
		if cacheErr != nil || len(cached) == 0 {
			return nil, fmt.Errorf("fetch daily bars: %w", err)
		}
		return Sanitize(cached), nil
	}

	bars = Sanitize(bars)
	if c.Cache != nil {
		if err := c.Cache.SaveDailyBars(symbol, bars); err != nil {
			log.Printf("[WARN] cache %s bars: %v", symbol, err)
		}
	}
	return bars, nil
}

// CollectAll fetches several symbols concurrently.
func (c *Collector) CollectAll(ctx context.Context, symbols []string) (map[string][]model.PricePoint, error) {
	out := make(map[string][]model.PricePoint, len(symbols))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			bars, err := c.Collect(symbol)
			if err != nil {
				return fmt.Errorf("%s: %w", symbol, err)
			}
			mu.Lock()
			out[symbol] = bars
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

// Sanitize enforces the engine's input contract: rows with a non-finite or
// non-positive close are dropped, days are deduplicated (last row wins) and
// the result is sorted ascending by date.
func Sanitize(bars []model.PricePoint) []model.PricePoint {
	byDay := make(map[string]model.PricePoint, len(bars))
	for _, b := range bars {
		if math.IsNaN(b.Close) || math.IsInf(b.Close, 0) || b.Close <= 0 {
			continue
		}
		byDay[series.DayKey(b.Date)] = b
	}
	out := make([]model.PricePoint, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
