package indicator

import (
	"StockScope/internal/model"
	"StockScope/internal/series"
)

// Crossover scans two already-computed moving-average series for golden and
// death crosses. A golden signal fires only on the bar where the fast average
// strictly crosses above the slow one (prev.fast <= prev.slow && cur.fast >
// cur.slow); a sustained relation never fires. Signals are anchored at the
// raw close of the crossing date. Alongside the signals it segments the
// joined range into contiguous golden/death zones: the first zone's kind is
// taken from the fast>slow relation at the first evaluable bar, each
// confirmed crossing closes the running zone at the crossing date and opens a
// new one, and the final zone closes at the last joined date.
func Crossover(fast, slow []series.Point, prices []model.PricePoint) ([]model.Signal, []model.Zone) {
	pairs := series.JoinByDate(fast, slow)
	if len(pairs) == 0 {
		return nil, nil
	}

	closeByDay := make(map[string]float64, len(prices))
	for _, p := range prices {
		closeByDay[series.DayKey(p.Date)] = p.Close
	}
	anchor := func(p series.Pair) float64 {
		if c, ok := closeByDay[series.DayKey(p.Date)]; ok {
			return c
		}
		return p.A
	}

	var signals []model.Signal
	zones := make([]model.Zone, 0, 4)

	zoneKind := model.ZoneDeath
	if pairs[0].A > pairs[0].B {
		zoneKind = model.ZoneGolden
	}
	zoneStart := pairs[0].Date

	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		switch {
		case prev.A <= prev.B && cur.A > cur.B:
			signals = append(signals, model.Signal{Date: cur.Date, Kind: model.SignalGolden, AnchorValue: anchor(cur)})
			zones = append(zones, model.Zone{Start: zoneStart, End: cur.Date, Kind: zoneKind})
			zoneKind = model.ZoneGolden
			zoneStart = cur.Date
		case prev.A >= prev.B && cur.A < cur.B:
			signals = append(signals, model.Signal{Date: cur.Date, Kind: model.SignalDeath, AnchorValue: anchor(cur)})
			zones = append(zones, model.Zone{Start: zoneStart, End: cur.Date, Kind: zoneKind})
			zoneKind = model.ZoneDeath
			zoneStart = cur.Date
		}
	}
	zones = append(zones, model.Zone{Start: zoneStart, End: pairs[len(pairs)-1].Date, Kind: zoneKind})

	return signals, zones
}
