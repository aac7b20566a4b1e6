package shift

import (
	"testing"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestParseShift(t *testing.T) {
	timing, err := ParseShift(Shift{
		Name:                 "GENERAL",
		StartTime:            "09:30",
		EndTime:              "18:30",
		WorkHours:            9,
		LateThresholdMinutes: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, timing.StartHour)
	assert.Equal(t, 30, timing.StartMinute)
	assert.Equal(t, 18, timing.EndHour)
	assert.Equal(t, 15, timing.LateThresholdMinutes)
	assert.False(t, timing.IsSplitShift)

	_, err = ParseShift(Shift{Name: "BAD", StartTime: "25:00", EndTime: "18:00"})
	assert.Error(t, err)

	_, err = ParseShift(Shift{Name: "BAD", StartTime: "0930", EndTime: "18:00"})
	assert.Error(t, err)
}

func TestParseSplitShift(t *testing.T) {
	timing, err := ParseShift(Shift{
		Name:         "SPLIT",
		StartTime:    "09:30",
		EndTime:      "20:00",
		WorkHours:    8,
		IsSplitShift: true,
		Slot1Start:   str("09:30"),
		Slot1End:     str("13:30"),
		Slot2Start:   str("16:00"),
		Slot2End:     str("20:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, timing.Slot1)
	require.NotNil(t, timing.Slot2)
	assert.Equal(t, 16, timing.Slot2.StartHour)

	// Split flag without both slots is rejected.
	_, err = ParseShift(Shift{
		Name:         "SPLIT",
		StartTime:    "09:30",
		EndTime:      "20:00",
		IsSplitShift: true,
		Slot1Start:   str("09:30"),
		Slot1End:     str("13:30"),
	})
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	date := func(s string) paycycle.LocalDate {
		d, err := paycycle.ParseLocalDate(s)
		require.NoError(t, err)
		return d
	}

	general := Timing{ShiftName: "GENERAL", WorkHours: 9}
	evening := Timing{ShiftName: "EVENING", WorkHours: 8}
	night := Timing{ShiftName: "NIGHT", WorkHours: 8}
	timings := map[string]Timing{"GENERAL": general, "EVENING": evening, "NIGHT": night}

	assignments := []Assignment{
		{ID: 1, ShiftName: "EVENING", FromDate: date("2025-02-01"), ToDate: date("2025-02-10")},
		{ID: 2, ShiftName: "NIGHT", FromDate: date("2025-02-05"), ToDate: date("2025-02-10")},
	}

	t.Run("assignment in range wins", func(t *testing.T) {
		got := Resolve(date("2025-02-03"), assignments, timings, "GENERAL")
		assert.Equal(t, "EVENING", got.ShiftName)
	})

	t.Run("highest id wins on overlap", func(t *testing.T) {
		got := Resolve(date("2025-02-07"), assignments, timings, "GENERAL")
		assert.Equal(t, "NIGHT", got.ShiftName)
	})

	t.Run("outside range falls back to default shift", func(t *testing.T) {
		got := Resolve(date("2025-02-15"), assignments, timings, "GENERAL")
		assert.Equal(t, "GENERAL", got.ShiftName)
	})

	t.Run("unknown default falls back to system default", func(t *testing.T) {
		got := Resolve(date("2025-02-15"), nil, timings, "MISSING")
		assert.Equal(t, "DEFAULT", got.ShiftName)
		assert.Equal(t, 9.0, got.WorkHours)
	})

	t.Run("no inputs at all", func(t *testing.T) {
		got := Resolve(date("2025-02-15"), nil, nil, "")
		assert.Equal(t, "DEFAULT", got.ShiftName)
	})
}
