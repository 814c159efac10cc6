package pricing

import (
	"time"
)

// ExpandOptions controls date-range expansion. ExcludePast drops days
// before Now at day granularity; Now defaults to the wall clock when zero.
type ExpandOptions struct {
	ExcludePast bool
	Now         time.Time
}

// ExpandDates returns every calendar day in [start, end] inclusive whose
// weekday is selected, in ascending order. A start after end yields an
// empty slice; callers surface that as a validation error.
func ExpandDates(start, end time.Time, weekdays map[time.Weekday]bool, opts ExpandOptions) []time.Time {
	start = Truncate(start)
	end = Truncate(end)
	if start.After(end) {
		return nil
	}

	var floor time.Time
	if opts.ExcludePast {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		floor = Truncate(now)
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !weekdays[d.Weekday()] {
			continue
		}
		if opts.ExcludePast && d.Before(floor) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// Truncate normalizes an instant to midnight UTC of its calendar day.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekdaySet builds a weekday lookup from 0=Sunday..6=Saturday indices,
// ignoring out-of-range values.
func WeekdaySet(days []int) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[time.Weekday(d)] = true
		}
	}
	return set
}
