package attendance

import (
	"testing"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) paycycle.LocalDate {
	t.Helper()
	d, err := paycycle.ParseLocalDate(s)
	require.NoError(t, err)
	return d
}

func punchesAt(t *testing.T, date string, clocks ...[2]int) []punch.Log {
	t.Helper()
	d := mustDate(t, date)
	logs := make([]punch.Log, len(clocks))
	for i, c := range clocks {
		logs[i] = punch.Log{EmployeeCode: "EMP001", LogTime: d.At(c[0], c[1])}
	}
	return logs
}

func TestGroupByWorkdayCrossover(t *testing.T) {
	d := mustDate(t, "2025-01-10")
	logs := []punch.Log{
		{EmployeeCode: "EMP001", LogTime: d.At(10, 0)},
		{EmployeeCode: "EMP001", LogTime: d.AddDays(1).At(1, 30)}, // next calendar day, same workday
		{EmployeeCode: "EMP001", LogTime: d.AddDays(1).At(9, 0)},
	}

	grouped := GroupByWorkday(logs)
	assert.Len(t, grouped[d], 2)
	assert.Len(t, grouped[d.AddDays(1)], 1)
}

func TestClassifyNormalDay(t *testing.T) {
	timing := shift.DefaultTiming() // 10:00-19:00, 9h, 12min grace
	date := "2025-01-10"

	t.Run("no punches is absent", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), nil, timing)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
		assert.Zero(t, got.TotalHours)
	})

	t.Run("on time full day", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{9, 58}, [2]int{19, 5}), timing)
		assert.Equal(t, attendance.StatusFullDay, got.Status)
		assert.False(t, got.IsLate)
		assert.False(t, got.IsLateBy30Minutes)
		assert.False(t, got.IsEarlyExit)
		assert.InDelta(t, 9.12, got.TotalHours, 0.01)
	})

	t.Run("within grace is not late", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{10, 12}, [2]int{19, 30}), timing)
		assert.False(t, got.IsLate)
		assert.Equal(t, attendance.StatusFullDay, got.Status)
	})

	t.Run("late past grace", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{10, 20}, [2]int{19, 0}), timing)
		assert.True(t, got.IsLate)
		require.NotNil(t, got.MinutesLate)
		assert.Equal(t, 20, *got.MinutesLate)
		assert.False(t, got.IsLateBy30Minutes)
		// 8h40m falls below the 97% full-day bar.
		assert.Equal(t, attendance.StatusHalfDay, got.Status)
	})

	t.Run("late by more than 30 minutes", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{10, 45}, [2]int{19, 45}), timing)
		assert.True(t, got.IsLate)
		assert.True(t, got.IsLateBy30Minutes)
		assert.Equal(t, attendance.StatusFullDay, got.Status)
	})

	t.Run("early exit", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{10, 0}, [2]int{18, 0}), timing)
		assert.True(t, got.IsEarlyExit)
		assert.Equal(t, attendance.StatusHalfDay, got.Status)
	})

	t.Run("single afternoon punch is checkout only", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{18, 30}), timing)
		assert.Nil(t, got.FirstEntry)
		require.NotNil(t, got.LastExit)
		assert.True(t, got.IsLate)
		assert.True(t, got.IsLateBy30Minutes)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
	})

	t.Run("single morning punch is checkin only", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{9, 55}), timing)
		require.NotNil(t, got.FirstEntry)
		assert.Nil(t, got.LastExit)
		assert.False(t, got.IsLate)
		assert.True(t, got.IsEarlyExit)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
	})

	t.Run("below half expected hours is absent", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date), punchesAt(t, date, [2]int{10, 0}, [2]int{14, 0}), timing)
		assert.Equal(t, attendance.StatusAbsent, got.Status)
	})
}

func splitTiming() shift.Timing {
	return shift.Timing{
		ShiftName:            "SPLIT",
		StartHour:            9, StartMinute: 30,
		EndHour: 20, EndMinute: 0,
		WorkHours:            8,
		LateThresholdMinutes: 12,
		IsSplitShift:         true,
		Slot1:                &shift.SlotTiming{StartHour: 9, StartMinute: 30, EndHour: 13, EndMinute: 30},
		Slot2:                &shift.SlotTiming{StartHour: 16, StartMinute: 0, EndHour: 20, EndMinute: 0},
	}
}

func TestClassifySplitDay(t *testing.T) {
	timing := splitTiming()
	date := "2025-01-10"

	t.Run("both slots worked is a full day", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date),
			punchesAt(t, date, [2]int{9, 32}, [2]int{13, 30}, [2]int{16, 5}, [2]int{20, 0}), timing)
		assert.Equal(t, attendance.StatusFullDay, got.Status)
		assert.False(t, got.IsLate)
		assert.InDelta(t, 7.88, got.TotalHours, 0.01)
	})

	t.Run("only one slot is absent", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date),
			punchesAt(t, date, [2]int{9, 30}, [2]int{13, 0}), timing)
		// 3.5 hours of an eight hour split day.
		assert.Equal(t, attendance.StatusAbsent, got.Status)
	})

	t.Run("late into the first slot", func(t *testing.T) {
		got := ClassifyDay(mustDate(t, date),
			punchesAt(t, date, [2]int{9, 50}, [2]int{13, 30}, [2]int{16, 0}, [2]int{20, 0}), timing)
		assert.True(t, got.IsLate)
		require.NotNil(t, got.MinutesLate)
		assert.Equal(t, 20, *got.MinutesLate)
	})

	t.Run("slot hours are capped", func(t *testing.T) {
		// Punches spanning far beyond the slot cannot inflate hours past
		// the slot duration plus slack.
		got := ClassifyDay(mustDate(t, date),
			punchesAt(t, date, [2]int{7, 0}, [2]int{13, 30}, [2]int{16, 0}, [2]int{20, 0}), timing)
		assert.InDelta(t, 5.0+4.0, got.TotalHours, 0.01)
	})
}

func TestStatusForHours(t *testing.T) {
	assert.Equal(t, attendance.StatusAbsent, statusForHours(4.49, 9))
	assert.Equal(t, attendance.StatusHalfDay, statusForHours(4.5, 9))
	assert.Equal(t, attendance.StatusHalfDay, statusForHours(8.72, 9))
	assert.Equal(t, attendance.StatusFullDay, statusForHours(8.74, 9))
	assert.Equal(t, attendance.StatusFullDay, statusForHours(9, 9))
}
