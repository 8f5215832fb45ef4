package server

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockScope/internal/indicator"
	"StockScope/internal/model"
	"StockScope/internal/series"
)

// renderChartPage renders the full dashboard page for one symbol: price with
// moving averages and Bollinger bands, the RSI panel with its smoothing
// bands, and the MACD panel. All panels share the canonical day key on the x
// axis so the overlays line up.
func renderChartPage(w io.Writer, a *model.Analysis, maxPoints int) error {
	points := indicator.Resample(a.Points, maxPoints)
	days := make([]string, len(points))
	for i, p := range points {
		days[i] = series.DayKey(p.Date)
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("StockScope - %s", a.Symbol)
	page.AddCharts(
		priceChart(a, points, days),
		rsiChart(a, days),
		macdChart(a, days),
	)
	return page.Render(w)
}

func priceChart(a *model.Analysis, points []model.PricePoint, days []string) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s close", a.Symbol),
			Subtitle: fmt.Sprintf("%d signals, %d zones", len(a.Signals), len(a.Zones)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	closeData := make([]opts.LineData, len(points))
	for i, p := range points {
		closeData[i] = opts.LineData{Value: p.Close}
	}

	line.SetXAxis(days).
		AddSeries("close", closeData).
		AddSeries("sma_fast", alignedLine(a.SMAFast, days)).
		AddSeries("sma_slow", alignedLine(a.SMASlow, days))

	upper, middle, lower := alignedBands(a.Bollinger, days)
	line.AddSeries("boll_upper", upper).
		AddSeries("boll_middle", middle).
		AddSeries("boll_lower", lower)
	return line
}

func rsiChart(a *model.Analysis, days []string) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "RSI"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "300px"}),
	)
	line.SetXAxis(days).AddSeries("rsi", alignedLine(a.RSI, days))

	upper, middle, lower := alignedBands(a.RSIBands, days)
	line.AddSeries("rsi_upper", upper).
		AddSeries("rsi_smoothing", middle).
		AddSeries("rsi_lower", lower)
	return line
}

func macdChart(a *model.Analysis, days []string) components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "MACD"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "300px"}),
	)
	histogram := make([]opts.BarData, len(days))
	byDay := pointsByDay(a.MACD.Histogram)
	for i, d := range days {
		if v, ok := byDay[d]; ok {
			histogram[i] = opts.BarData{Value: v}
		} else {
			histogram[i] = opts.BarData{Value: nil}
		}
	}
	bar.SetXAxis(days).AddSeries("histogram", histogram)

	line := charts.NewLine()
	line.SetXAxis(days).
		AddSeries("macd", alignedLine(a.MACD.MACDLine, days)).
		AddSeries("signal", alignedLine(a.MACD.SignalLine, days))
	bar.Overlap(line)
	return bar
}

// alignedLine places a derived series on the shared x axis, leaving gaps
// where the series is undefined.
func alignedLine(points []series.Point, days []string) []opts.LineData {
	byDay := pointsByDay(points)
	out := make([]opts.LineData, len(days))
	for i, d := range days {
		if v, ok := byDay[d]; ok {
			out[i] = opts.LineData{Value: v}
		} else {
			out[i] = opts.LineData{Value: nil}
		}
	}
	return out
}

func alignedBands(bands []model.BandPoint, days []string) (upper, middle, lower []opts.LineData) {
	type triple struct{ u, m, l float64 }
	byDay := make(map[string]triple, len(bands))
	for _, b := range bands {
		byDay[series.DayKey(b.Date)] = triple{b.Upper, b.Middle, b.Lower}
	}
	upper = make([]opts.LineData, len(days))
	middle = make([]opts.LineData, len(days))
	lower = make([]opts.LineData, len(days))
	for i, d := range days {
		if t, ok := byDay[d]; ok {
			upper[i] = opts.LineData{Value: t.u}
			middle[i] = opts.LineData{Value: t.m}
			lower[i] = opts.LineData{Value: t.l}
		} else {
			upper[i] = opts.LineData{Value: nil}
			middle[i] = opts.LineData{Value: nil}
			lower[i] = opts.LineData{Value: nil}
		}
	}
	return upper, middle, lower
}

func pointsByDay(points []series.Point) map[string]float64 {
	byDay := make(map[string]float64, len(points))
	for _, p := range points {
		if p.Valid {
			byDay[series.DayKey(p.Date)] = p.Value
		}
	}
	return byDay
}
