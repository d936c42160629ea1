package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/binbuddy/tracker/internal/tracker"
)

var today = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) string {
	return today.AddDate(0, 0, -n).Format(tracker.DateLayout)
}

func TestStreakOnLoad(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc        string
		LastLogDate string
		Current     int
		Expected    int
	}{
		{
			Desc:        "no prior log keeps stored value",
			LastLogDate: "",
			Current:     3,
			Expected:    3,
		},
		{
			Desc:        "logged today keeps streak",
			LastLogDate: daysAgo(0),
			Current:     5,
			Expected:    5,
		},
		{
			Desc:        "logged yesterday keeps streak",
			LastLogDate: daysAgo(1),
			Current:     5,
			Expected:    5,
		},
		{
			Desc:        "two day gap breaks streak",
			LastLogDate: daysAgo(2),
			Current:     5,
			Expected:    0,
		},
		{
			Desc:        "three day gap breaks streak",
			LastLogDate: daysAgo(3),
			Current:     10,
			Expected:    0,
		},
		{
			Desc:        "future last date treated as no gap",
			LastLogDate: daysAgo(-1),
			Current:     4,
			Expected:    4,
		},
		{
			Desc:        "corrupt last date keeps stored value",
			LastLogDate: "not-a-date",
			Current:     2,
			Expected:    2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tracker.StreakOnLoad(tc.LastLogDate, tc.Current, today))
		})
	}
}

func TestStreakOnLog(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc        string
		LastLogDate string
		Current     int
		Expected    int
	}{
		{
			Desc:        "first ever log starts streak",
			LastLogDate: "",
			Current:     0,
			Expected:    1,
		},
		{
			Desc:        "second log same day doesn't double count",
			LastLogDate: daysAgo(0),
			Current:     4,
			Expected:    4,
		},
		{
			Desc:        "next day log increments by one",
			LastLogDate: daysAgo(1),
			Current:     4,
			Expected:    5,
		},
		{
			Desc:        "two day gap restarts at one",
			LastLogDate: daysAgo(2),
			Current:     4,
			Expected:    1,
		},
		{
			Desc:        "long gap restarts at one",
			LastLogDate: daysAgo(30),
			Current:     12,
			Expected:    1,
		},
		{
			Desc:        "future last date treated as same day",
			LastLogDate: daysAgo(-2),
			Current:     4,
			Expected:    4,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tracker.StreakOnLog(tc.LastLogDate, tc.Current, today))
		})
	}
}

// Logging at 11pm then 1am the next day is one day apart on the calendar,
// whatever the raw instant difference says.
func TestStreakOnLogLateNight(t *testing.T) {
	t.Parallel()
	lastDate := time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC).Format(tracker.DateLayout)
	earlyMorning := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, tracker.StreakOnLog(lastDate, 2, earlyMorning))
}
