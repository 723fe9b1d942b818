package services

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ResolvePeriod maps a budget's start date and cadence to its active cycle
// window [periodStart, periodEnd]. Both ends are inclusive when matching
// transaction dates, so a transaction dated exactly on periodEnd also falls
// in the next cycle; callers live with that boundary overlap for
// compatibility with the historical BETWEEN queries.
//
// With rolling=false the window is pinned to the budget's first cycle:
// periodStart is always the start date itself, no matter how far "now" has
// moved on. With rolling=true the window advances in whole periods from the
// original start date until it contains now (windows never advance past now,
// and a future start date keeps its first window).
//
// Monthly cycles add one calendar month preserving the day-of-month, clamped
// to the last day when the target month is shorter. Weekly cycles add exactly
// seven days. Rolling monthly windows are always derived from the original
// start date so a Jan 31 budget does not drift to the 28th forever after
// passing through February.
func ResolvePeriod(startDate time.Time, period string, now time.Time, rolling bool) (time.Time, time.Time) {
	if !rolling {
		return startDate, cycleStart(startDate, period, 1)
	}

	k := 0
	for !now.Before(cycleStart(startDate, period, k+1)) {
		k++
	}
	return cycleStart(startDate, period, k), cycleStart(startDate, period, k+1)
}

// cycleStart returns the start of the k-th cycle counted from startDate.
func cycleStart(startDate time.Time, period string, k int) time.Time {
	if period == "weekly" {
		return startDate.AddDate(0, 0, 7*k)
	}
	return addMonthsClamped(startDate, k)
}

// addMonthsClamped adds k calendar months, clamping the day-of-month to the
// last valid day of the target month (Jan 31 + 1 month = Feb 28/29). Plain
// time.AddDate would normalize Jan 31 + 1 month into early March instead.
func addMonthsClamped(t time.Time, k int) time.Time {
	y, m, d := t.Date()
	lastDay := time.Date(y, m+time.Month(k)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(y, m+time.Month(k), d, 0, 0, 0, 0, t.Location())
}
