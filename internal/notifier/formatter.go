package notifier

import (
	"fmt"
	"strings"

	"StockScope/internal/model"
	"StockScope/internal/series"
)

var signalHeadlines = map[model.SignalKind]string{
	model.SignalGolden:         "🟡 Golden cross",
	model.SignalDeath:          "⚫ Death cross",
	model.SignalBullDivergence: "🟢 Bullish divergence",
	model.SignalBearDivergence: "🔴 Bearish divergence",
	model.SignalBuy:            "🟢 Buy",
	model.SignalSell:           "🔴 Sell",
}

// FormatSignalAlert formats fresh signals from one analysis into a Telegram
// message. Returns "" when there is nothing to report.
func FormatSignalAlert(a *model.Analysis, signals []model.Signal) string {
	if len(signals) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", a.Symbol, series.DayKey(a.ComputedAt)))
	for _, s := range signals {
		headline, ok := signalHeadlines[s.Kind]
		if !ok {
			headline = string(s.Kind)
		}
		b.WriteString(fmt.Sprintf("%s @ %.2f (%s)\n", headline, s.AnchorValue, series.DayKey(s.Date)))
	}
	if len(a.Points) > 0 {
		b.WriteString(fmt.Sprintf("\nLast close: %.2f\n", a.Points[len(a.Points)-1].Close))
	}
	return b.String()
}

// FormatSummary formats a compact indicator summary for one analysis.
func FormatSummary(a *model.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>%s</b> | %d bars\n\n", a.Symbol, len(a.Points)))

	if last, ok := lastValid(a.SMAFast); ok {
		b.WriteString(fmt.Sprintf("SMA fast: %.2f\n", last))
	}
	if last, ok := lastValid(a.SMASlow); ok {
		b.WriteString(fmt.Sprintf("SMA slow: %.2f\n", last))
	}
	if last, ok := lastValid(a.RSI); ok {
		b.WriteString(fmt.Sprintf("RSI: %.1f\n", last))
	}
	if last, ok := lastValid(a.MACD.Histogram); ok {
		b.WriteString(fmt.Sprintf("MACD hist: %+.4f\n", last))
	}
	if n := len(a.Bollinger); n > 0 {
		bb := a.Bollinger[n-1]
		b.WriteString(fmt.Sprintf("Bollinger: %.2f / %.2f / %.2f\n", bb.Lower, bb.Middle, bb.Upper))
	}
	if len(a.Zones) > 0 {
		z := a.Zones[len(a.Zones)-1]
		b.WriteString(fmt.Sprintf("Current zone: %s since %s\n", z.Kind, series.DayKey(z.Start)))
	}
	b.WriteString(fmt.Sprintf("Signals in window: %d\n", len(a.Signals)))
	return b.String()
}

func lastValid(points []series.Point) (float64, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Valid {
			return points[i].Value, true
		}
	}
	return 0, false
}
