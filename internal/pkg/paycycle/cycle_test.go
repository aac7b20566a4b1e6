package paycycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleRange(t *testing.T) {
	start, end, err := CycleRange("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-26", start.String())
	assert.Equal(t, "2025-01-25", end.String())

	// January rollback crosses the year boundary.
	start, end, err = CycleRange("2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-26", start.String())
	assert.Equal(t, "2025-03-25", end.String())

	_, _, err = CycleRange("2025-13")
	assert.Error(t, err)

	_, _, err = CycleRange("garbage")
	assert.Error(t, err)
}

func TestDaysInCycle(t *testing.T) {
	days, err := DaysInCycle("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 31, days)

	// Feb 26 to Mar 25 in a non-leap year.
	days, err = DaysInCycle("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 28, days)

	// Leap year February inside the cycle.
	days, err = DaysInCycle("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 29, days)
}

func TestCycleForDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-01-25", "2025-01"},
		{"2025-01-26", "2025-02"},
		{"2024-12-26", "2025-01"},
		{"2024-12-25", "2024-12"},
		{"2025-02-01", "2025-02"},
	}
	for _, tc := range tests {
		d, err := ParseLocalDate(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, CycleForDate(d), "date %s", tc.date)
	}
}

func TestNextPrevMonth(t *testing.T) {
	next, err := NextMonth("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-01", next)

	prev, err := PrevMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)
}

func TestWeekBounds(t *testing.T) {
	// 2025-01-12 is a Sunday; its week starts Monday 2025-01-06.
	sunday, err := ParseLocalDate("2025-01-12")
	require.NoError(t, err)
	monday, weekEnd := WeekBounds(sunday)
	assert.Equal(t, "2025-01-06", monday.String())
	assert.Equal(t, "2025-01-12", weekEnd.String())

	// A Wednesday maps into the same week.
	wednesday, err := ParseLocalDate("2025-01-08")
	require.NoError(t, err)
	monday, weekEnd = WeekBounds(wednesday)
	assert.Equal(t, "2025-01-06", monday.String())
	assert.Equal(t, "2025-01-12", weekEnd.String())
}

func TestWorkdayCrossover(t *testing.T) {
	// Punches before 05:00 belong to the previous workday.
	night := LocalTimeOf(time.Date(2025, time.January, 10, 2, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-09", night.Workday().String())

	morning := LocalTimeOf(time.Date(2025, time.January, 10, 5, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-10", morning.Workday().String())

	midnight := LocalTimeOf(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-09", midnight.Workday().String())
}

func TestCycleDays(t *testing.T) {
	days, err := CycleDays("2025-01")
	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.Equal(t, "2024-12-26", days[0].String())
	assert.Equal(t, "2025-01-25", days[30].String())
}
