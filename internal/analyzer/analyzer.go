package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
)

// Params are the tunable indicator parameters for one analysis run.
type Params struct {
	SMAFast    int `yaml:"sma_fast"`
	SMASlow    int `yaml:"sma_slow"`
	RSIPeriod  int `yaml:"rsi_period"`
	RSISmooth  int `yaml:"rsi_smooth"`
	MACDFast   int `yaml:"macd_fast"`
	MACDSlow   int `yaml:"macd_slow"`
	MACDSignal int `yaml:"macd_signal"`
	BollPeriod int `yaml:"boll_period"`

	RSIBandMult float64 `yaml:"rsi_band_mult"`
	BollDevs    float64 `yaml:"boll_devs"`

	DivergenceLeft  int `yaml:"divergence_left"`
	DivergenceRight int `yaml:"divergence_right"`
}

// DefaultParams returns the standard dashboard parameters.
func DefaultParams() Params {
	return Params{
		SMAFast:         50,
		SMASlow:         200,
		RSIPeriod:       14,
		RSISmooth:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BollPeriod:      20,
		RSIBandMult:     2,
		BollDevs:        2,
		DivergenceLeft:  5,
		DivergenceRight: 5,
	}
}

// Normalize fills zero-valued fields with the defaults.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.SMAFast <= 0 {
		p.SMAFast = d.SMAFast
	}
	if p.SMASlow <= 0 {
		p.SMASlow = d.SMASlow
	}
	if p.RSIPeriod <= 0 {
		p.RSIPeriod = d.RSIPeriod
	}
	if p.RSISmooth <= 0 {
		p.RSISmooth = d.RSISmooth
	}
	if p.MACDFast <= 0 {
		p.MACDFast = d.MACDFast
	}
	if p.MACDSlow <= 0 {
		p.MACDSlow = d.MACDSlow
	}
	if p.MACDSignal <= 0 {
		p.MACDSignal = d.MACDSignal
	}
	if p.BollPeriod <= 0 {
		p.BollPeriod = d.BollPeriod
	}
	if p.RSIBandMult <= 0 {
		p.RSIBandMult = d.RSIBandMult
	}
	if p.BollDevs <= 0 {
		p.BollDevs = d.BollDevs
	}
	if p.DivergenceLeft <= 0 {
		p.DivergenceLeft = d.DivergenceLeft
	}
	if p.DivergenceRight <= 0 {
		p.DivergenceRight = d.DivergenceRight
	}
	return p
}

// Run computes every indicator over one immutable price series snapshot.
// Indicators whose lookback exceeds the series length simply come back empty;
// that is an expected outcome for short histories, not an error, so Run never
// fails.
func Run(symbol string, points []model.PricePoint, p Params) *model.Analysis {
	p = p.Normalize()
	points = dropMalformed(points)

	a := &model.Analysis{
		ID:         uuid.NewString(),
		Symbol:     symbol,
		ComputedAt: time.Now().UTC(),
		Points:     points,
	}

	a.SMAFast = indicator.SMA(points, p.SMAFast)
	a.SMASlow = indicator.SMA(points, p.SMASlow)

	crossSignals, zones := indicator.Crossover(a.SMAFast, a.SMASlow, points)
	a.Signals = append(a.Signals, crossSignals...)
	a.Zones = zones

	a.RSI = indicator.RSI(points, p.RSIPeriod)
	a.RSIBands = indicator.RSISmoothing(a.RSI, p.RSISmooth, p.RSIBandMult)
	a.Signals = append(a.Signals, indicator.Divergence(a.RSI, points, p.DivergenceLeft, p.DivergenceRight)...)

	a.MACD = indicator.MACD(points, p.MACDFast, p.MACDSlow, p.MACDSignal)
	a.Bollinger = indicator.Bollinger(points, p.BollPeriod, p.BollDevs)
	a.Fibonacci = indicator.Fibonacci(points)
	a.Peaks = indicator.Extrema(points)

	sortSignals(a.Signals)
	return a
}

// dropMalformed excludes rows with a non-finite close before computation.
func dropMalformed(points []model.PricePoint) []model.PricePoint {
	out := make([]model.PricePoint, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortSignals(signals []model.Signal) {
	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Date.Before(signals[j].Date)
	})
}
