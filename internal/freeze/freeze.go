// Package freeze derives employee trading blackout windows from earnings
// announcement dates.
package freeze

import (
	"sort"
	"time"

	"GoogChfTracker/internal/model"
)

// Quarter lock days: the blackout opens on the 10th of the month before the
// quarter whose results the announcement covers, and closes three days after
// the announcement itself.
var lockStarts = map[time.Month]func(year int) time.Time{
	time.January:  func(y int) time.Time { return date(y-1, time.December, 10) },
	time.February: func(y int) time.Time { return date(y-1, time.December, 10) },
	time.April:    func(y int) time.Time { return date(y, time.March, 10) },
	time.May:      func(y int) time.Time { return date(y, time.March, 10) },
	time.July:     func(y int) time.Time { return date(y, time.June, 10) },
	time.August:   func(y int) time.Time { return date(y, time.June, 10) },
	time.October:  func(y int) time.Time { return date(y, time.September, 10) },
	time.November: func(y int) time.Time { return date(y, time.September, 10) },
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PeriodsFromEarnings maps each earnings date to its blackout window,
// returned sorted by start. An earnings date in an unexpected month falls
// back to a 45-day window before the announcement.
func PeriodsFromEarnings(earnings []time.Time) []model.FreezePeriod {
	periods := make([]model.FreezePeriod, 0, len(earnings))
	for _, e := range earnings {
		start, ok := startFor(e)
		if !ok {
			start = e.AddDate(0, 0, -45)
		}
		periods = append(periods, model.FreezePeriod{
			Start: start,
			End:   e.AddDate(0, 0, 3),
		})
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Start.Before(periods[j].Start) })
	return periods
}

func startFor(earnings time.Time) (time.Time, bool) {
	fn, ok := lockStarts[earnings.Month()]
	if !ok {
		return time.Time{}, false
	}
	return fn(earnings.Year()), true
}

// Overlapping filters periods down to those intersecting [from, to].
func Overlapping(periods []model.FreezePeriod, from, to time.Time) []model.FreezePeriod {
	out := make([]model.FreezePeriod, 0, len(periods))
	for _, p := range periods {
		if !p.End.Before(from) && !p.Start.After(to) {
			out = append(out, p)
		}
	}
	return out
}
