package market

import (
	"slices"
	"time"
)

// Regular trading hours of the exchange, local time.
const (
	openHour   = 9
	openMinute = 30
	closeHour  = 16
)

// SessionWindow returns the regular-hours open and close instants for the
// given calendar day, exchange-local. Bars at or past close belong to the
// next session and are dropped.
func SessionWindow(day time.Time, loc *time.Location) (open, close time.Time) {
	y, m, d := day.Date()
	open = time.Date(y, m, d, openHour, openMinute, 0, 0, loc)
	close = time.Date(y, m, d, closeHour, 0, 0, 0, loc)
	return open, close
}

// NewSession builds a normalized session from raw provider bars: sorted by
// time, clamped to the regular-hours window, duplicate minutes dropped
// (first occurrence wins) and gaps filled forward from the prior bar so the
// result is contiguous at 1-minute resolution.
func NewSession(symbol string, day time.Time, loc *time.Location, bars []Bar) Session {
	open, close := SessionWindow(day, loc)

	sorted := make([]Bar, 0, len(bars))
	for _, b := range bars {
		t := b.Time.In(loc).Truncate(time.Minute)
		if t.Before(open) || !t.Before(close) {
			continue
		}

		b.Time = t
		sorted = append(sorted, b)
	}

	slices.SortStableFunc(sorted, func(a, b Bar) int {
		return a.Time.Compare(b.Time)
	})

	var out []Bar
	for _, b := range sorted {
		if len(out) == 0 {
			out = append(out, b)
			continue
		}

		prev := out[len(out)-1]
		if !b.Time.After(prev.Time) {
			continue
		}

		for t := prev.Time.Add(time.Minute); t.Before(b.Time); t = t.Add(time.Minute) {
			fill := prev
			fill.Time = t
			out = append(out, fill)
		}

		out = append(out, b)
	}

	return Session{symbol: symbol, bars: out}
}
