package indicator

import "StockScope/internal/model"

// PeriodExtrema groups the price series into weekly, monthly or yearly
// buckets and emits one periodHigh and one periodLow peak per bucket. Weekly
// buckets use the ISO week. Each peak carries the winning bar's own date and
// value (high, or close when high is absent; low likewise), not the bucket
// boundary.
func PeriodExtrema(points []model.PricePoint, period model.Period) []model.Peak {
	if len(points) == 0 {
		return nil
	}

	var peaks []model.Peak
	var curKey int
	var hiBar, loBar model.PricePoint
	started := false

	flush := func() {
		peaks = append(peaks,
			model.Peak{Date: hiBar.Date, Kind: model.PeakHigh, Period: period, Value: hiBar.HighOrClose()},
			model.Peak{Date: loBar.Date, Kind: model.PeakLow, Period: period, Value: loBar.LowOrClose()},
		)
	}

	for _, p := range points {
		key := bucketKey(p, period)
		if !started || key != curKey {
			if started {
				flush()
			}
			curKey, hiBar, loBar, started = key, p, p, true
			continue
		}
		if p.HighOrClose() > hiBar.HighOrClose() {
			hiBar = p
		}
		if p.LowOrClose() < loBar.LowOrClose() {
			loBar = p
		}
	}
	flush()
	return peaks
}

// Extrema emits weekly, monthly and yearly peaks in one slice.
func Extrema(points []model.PricePoint) []model.Peak {
	var peaks []model.Peak
	for _, period := range []model.Period{model.PeriodWeek, model.PeriodMonth, model.PeriodYear} {
		peaks = append(peaks, PeriodExtrema(points, period)...)
	}
	return peaks
}

func bucketKey(p model.PricePoint, period model.Period) int {
	t := p.Date.UTC()
	switch period {
	case model.PeriodWeek:
		year, week := t.ISOWeek()
		return year*100 + week
	case model.PeriodMonth:
		return t.Year()*100 + int(t.Month())
	default:
		return t.Year()
	}
}
