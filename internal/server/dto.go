package server

import (
	"math"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
	"StockScope/internal/series"
)

// All response dates are the canonical calendar-day key. Downstream chart
// code joins series by this key, so every emitted series uses the same
// representation; locale formatting is the client's business.

type pricePointDTO struct {
	Date   string   `json:"date"`
	Close  float64  `json:"close"`
	High   *float64 `json:"high,omitempty"`
	Low    *float64 `json:"low,omitempty"`
	Volume *float64 `json:"volume,omitempty"`
}

type pointDTO struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type bandPointDTO struct {
	Date   string  `json:"date"`
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

type macdDTO struct {
	MACDLine   []pointDTO `json:"macd_line"`
	SignalLine []pointDTO `json:"signal_line"`
	Histogram  []pointDTO `json:"histogram"`
}

type fibLevelDTO struct {
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
	Value float64 `json:"value"`
}

type fibonacciDTO struct {
	High   float64       `json:"high"`
	Low    float64       `json:"low"`
	Levels []fibLevelDTO `json:"levels"`
}

type signalDTO struct {
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	AnchorValue float64 `json:"anchor_value"`
}

type zoneDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Kind  string `json:"kind"`
}

type peakDTO struct {
	Date   string  `json:"date"`
	Kind   string  `json:"kind"`
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

type analysisDTO struct {
	ID         string          `json:"id"`
	Symbol     string          `json:"symbol"`
	ComputedAt string          `json:"computed_at"`
	Points     []pricePointDTO `json:"points"`
	SMAFast    []pointDTO      `json:"sma_fast"`
	SMASlow    []pointDTO      `json:"sma_slow"`
	RSI        []pointDTO      `json:"rsi"`
	RSIBands   []bandPointDTO  `json:"rsi_bands"`
	MACD       macdDTO         `json:"macd"`
	Bollinger  []bandPointDTO  `json:"bollinger"`
	Fibonacci  *fibonacciDTO   `json:"fibonacci,omitempty"`
	Signals    []signalDTO     `json:"signals"`
	Zones      []zoneDTO       `json:"zones"`
	Peaks      []peakDTO       `json:"peaks"`
}

// toAnalysisDTO maps an analysis snapshot to its wire shape, resampling the
// dense series down to maxPoints for display.
func toAnalysisDTO(a *model.Analysis, maxPoints int) analysisDTO {
	dto := analysisDTO{
		ID:         a.ID,
		Symbol:     a.Symbol,
		ComputedAt: series.DayKey(a.ComputedAt),
		Points:     toPricePoints(indicator.Resample(a.Points, maxPoints)),
		SMAFast:    toPoints(indicator.Resample(series.Valid(a.SMAFast), maxPoints)),
		SMASlow:    toPoints(indicator.Resample(series.Valid(a.SMASlow), maxPoints)),
		RSI:        toPoints(indicator.Resample(series.Valid(a.RSI), maxPoints)),
		RSIBands:   toBandPoints(indicator.Resample(a.RSIBands, maxPoints)),
		MACD: macdDTO{
			MACDLine:   toPoints(indicator.Resample(series.Valid(a.MACD.MACDLine), maxPoints)),
			SignalLine: toPoints(indicator.Resample(series.Valid(a.MACD.SignalLine), maxPoints)),
			Histogram:  toPoints(indicator.Resample(series.Valid(a.MACD.Histogram), maxPoints)),
		},
		Bollinger: toBandPoints(indicator.Resample(a.Bollinger, maxPoints)),
		Signals:   toSignals(a.Signals),
		Zones:     toZones(a.Zones),
		Peaks:     toPeaks(a.Peaks),
	}
	if a.Fibonacci != nil {
		levels := make([]fibLevelDTO, len(a.Fibonacci.Levels))
		for i, l := range a.Fibonacci.Levels {
			levels[i] = fibLevelDTO{Label: l.Label, Ratio: l.Ratio, Value: l.Value}
		}
		dto.Fibonacci = &fibonacciDTO{High: a.Fibonacci.High, Low: a.Fibonacci.Low, Levels: levels}
	}
	return dto
}

func toPricePoints(points []model.PricePoint) []pricePointDTO {
	out := make([]pricePointDTO, len(points))
	for i, p := range points {
		out[i] = pricePointDTO{
			Date:   series.DayKey(p.Date),
			Close:  p.Close,
			High:   optional(p.High),
			Low:    optional(p.Low),
			Volume: optional(p.Volume),
		}
	}
	return out
}

func toPoints(points []series.Point) []pointDTO {
	out := make([]pointDTO, len(points))
	for i, p := range points {
		out[i] = pointDTO{Date: series.DayKey(p.Date), Value: p.Value}
	}
	return out
}

func toBandPoints(points []model.BandPoint) []bandPointDTO {
	out := make([]bandPointDTO, len(points))
	for i, p := range points {
		out[i] = bandPointDTO{Date: series.DayKey(p.Date), Upper: p.Upper, Middle: p.Middle, Lower: p.Lower}
	}
	return out
}

func toSignals(signals []model.Signal) []signalDTO {
	out := make([]signalDTO, len(signals))
	for i, s := range signals {
		out[i] = signalDTO{Date: series.DayKey(s.Date), Kind: string(s.Kind), AnchorValue: s.AnchorValue}
	}
	return out
}

func toZones(zones []model.Zone) []zoneDTO {
	out := make([]zoneDTO, len(zones))
	for i, z := range zones {
		out[i] = zoneDTO{Start: series.DayKey(z.Start), End: series.DayKey(z.End), Kind: string(z.Kind)}
	}
	return out
}

func toPeaks(peaks []model.Peak) []peakDTO {
	out := make([]peakDTO, len(peaks))
	for i, p := range peaks {
		out[i] = peakDTO{Date: series.DayKey(p.Date), Kind: string(p.Kind), Period: string(p.Period), Value: p.Value}
	}
	return out
}

func optional(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
