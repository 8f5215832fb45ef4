package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"StockScope/internal/analyzer"
	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/model"
	"StockScope/internal/series"
)

// scan runs a one-shot analysis for the given symbols and prints the signal
// and extrema tables. Intended for quick terminal checks without the server.
func main() {
	log.SetFlags(log.LstdFlags)

	cfgPath := flag.String("config", "configs/config.yaml", "config file path")
	mock := flag.Bool("mock", false, "use deterministic mock data instead of fetching")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	symbols := flag.Args()
	if len(symbols) == 0 {
		symbols = cfg.DataSource.Symbols
	}

	var fetcher collector.Fetcher
	switch {
	case *mock:
		fetcher = &collector.MockFetcher{}
	case cfg.DataSource.BaseURL != "":
		fetcher = collector.NewHistoryAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	col := collector.NewCollector(fetcher, nil, cfg.DataSource.Days)

	for _, symbol := range symbols {
		points, err := col.Collect(symbol)
		if err != nil {
			log.Printf("[ERROR] collect %s: %v", symbol, err)
			continue
		}
		a := analyzer.Run(symbol, points, cfg.Indicators)
		printAnalysis(a)
	}
}

func printAnalysis(a *model.Analysis) {
	fmt.Printf("\n== %s (%d bars) ==\n", a.Symbol, len(a.Points))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Indicator", "Latest"})
	appendLatest(t, "SMA fast", a.SMAFast)
	appendLatest(t, "SMA slow", a.SMASlow)
	appendLatest(t, "RSI", a.RSI)
	appendLatest(t, "MACD", a.MACD.MACDLine)
	appendLatest(t, "MACD signal", a.MACD.SignalLine)
	appendLatest(t, "MACD histogram", a.MACD.Histogram)
	if n := len(a.Bollinger); n > 0 {
		b := a.Bollinger[n-1]
		t.AppendRow(table.Row{"Bollinger", fmt.Sprintf("%.2f / %.2f / %.2f", b.Lower, b.Middle, b.Upper)})
	}
	if a.Fibonacci != nil {
		for _, l := range a.Fibonacci.Levels {
			t.AppendRow(table.Row{"Fib " + l.Label, fmt.Sprintf("%.2f", l.Value)})
		}
	}
	t.Render()

	if len(a.Signals) > 0 {
		st := table.NewWriter()
		st.SetOutputMirror(os.Stdout)
		st.AppendHeader(table.Row{"Date", "Signal", "Anchor"})
		for _, s := range a.Signals {
			st.AppendRow(table.Row{series.DayKey(s.Date), string(s.Kind), fmt.Sprintf("%.2f", s.AnchorValue)})
		}
		st.Render()
	}

	if len(a.Peaks) > 0 {
		pt := table.NewWriter()
		pt.SetOutputMirror(os.Stdout)
		pt.AppendHeader(table.Row{"Date", "Period", "Kind", "Value"})
		for _, p := range a.Peaks {
			pt.AppendRow(table.Row{series.DayKey(p.Date), string(p.Period), string(p.Kind), fmt.Sprintf("%.2f", p.Value)})
		}
		pt.Render()
	}

	if len(a.Zones) > 0 {
		z := a.Zones[len(a.Zones)-1]
		fmt.Printf("current zone: %s since %s\n", z.Kind, series.DayKey(z.Start))
	}
}

func appendLatest(t table.Writer, name string, points []series.Point) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Valid {
			t.AppendRow(table.Row{name, fmt.Sprintf("%.2f", points[i].Value)})
			return
		}
	}
	t.AppendRow(table.Row{name, "n/a"})
}
