// Package tracker implements the stats, streak and achievement computations.
// Every function here is pure: the current date is always a parameter and
// nothing reads the clock or touches storage.
package tracker

import "time"

// DateLayout is the day-granular format lastLogDate is stored in.
const DateLayout = "2006-01-02"

// dayGap returns the whole-day difference between lastLogDate and today,
// both truncated to calendar dates. Comparing dates instead of raw instants
// keeps a 11pm-then-1am pair from counting as the same day.
func dayGap(lastLogDate string, today time.Time) (int, bool) {
	last, err := time.Parse(DateLayout, lastLogDate)
	if err != nil {
		return 0, false
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Sub(last).Hours() / 24), true
}

// StreakOnLoad adjusts a stored streak for time passed since the last
// session. A gap of more than one day means the streak was broken. A
// negative gap can only come from a skewed clock or corrupt date and is
// treated as no gap.
func StreakOnLoad(lastLogDate string, current int, today time.Time) int {
	gap, ok := dayGap(lastLogDate, today)
	if !ok {
		return current
	}
	if gap > 1 {
		return 0
	}
	return current
}

// StreakOnLog returns the streak after logging an item today.
func StreakOnLog(lastLogDate string, current int, today time.Time) int {
	gap, ok := dayGap(lastLogDate, today)
	if !ok {
		// First ever log starts the streak.
		return 1
	}
	switch {
	case gap == 1:
		return current + 1
	case gap > 1:
		return 1
	default:
		// Already logged today, or negative gap from clock skew.
		return current
	}
}
