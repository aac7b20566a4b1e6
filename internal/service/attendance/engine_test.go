package attendance

import (
	"testing"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMonth is 2025-01-26 (a Sunday) through 2025-02-25: 31 days,
// 5 Sundays, 26 weekdays.
const testMonth = "2025-02"

func baseInput(t *testing.T) engineInput {
	t.Helper()
	cycleStart, cycleEnd, err := paycycle.CycleRange(testMonth)
	require.NoError(t, err)
	return engineInput{
		employeeCode: "EMP001",
		month:        testMonth,
		cycleStart:   cycleStart,
		cycleEnd:     cycleEnd,
		joinDate:     mustDate(t, "2023-06-01"),
		punches:      make(map[paycycle.LocalDate][]punch.Log),
	}
}

// fillWeekdays adds a full working day of punches on every non-Sunday
// date of the cycle except the listed ones.
func fillWeekdays(t *testing.T, in *engineInput, except ...string) {
	t.Helper()
	skip := make(map[string]bool, len(except))
	for _, s := range except {
		skip[s] = true
	}
	for d := in.cycleStart; !d.After(in.cycleEnd); d = d.AddDays(1) {
		if d.IsSunday() || skip[d.String()] {
			continue
		}
		in.punches[d] = []punch.Log{
			{EmployeeCode: in.employeeCode, LogTime: d.At(10, 0)},
			{EmployeeCode: in.employeeCode, LogTime: d.At(19, 5)},
		}
	}
}

func dayFor(t *testing.T, m attendance.MonthlyAttendance, date string) attendance.DayRecord {
	t.Helper()
	want := mustDate(t, date)
	for _, d := range m.Days {
		if d.Date.Equal(want) {
			return d
		}
	}
	t.Fatalf("day %s not found", date)
	return attendance.DayRecord{}
}

func TestEngineFullAttendance(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in)

	m := runEngine(in)

	assert.Equal(t, 26, m.FullDays)
	assert.Zero(t, m.HalfDays)
	assert.Zero(t, m.AbsentDays)
	assert.Equal(t, 31, m.TotalDaysInEffectiveCycle)
	assert.Zero(t, m.OriginalLOPForSundayRule)

	var paidSundays int
	for _, d := range m.Days {
		if d.IsSunday {
			assert.Equal(t, attendance.StatusWeekoff, d.Status)
			if d.WeekoffType == attendance.WeekoffPaid {
				paidSundays++
			}
		}
	}
	assert.Equal(t, 5, paidSundays)
}

func TestEngineWorkedSunday(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in)
	feb2 := mustDate(t, "2025-02-02") // Sunday
	in.punches[feb2] = []punch.Log{
		{EmployeeCode: in.employeeCode, LogTime: feb2.At(10, 45)},
		{EmployeeCode: in.employeeCode, LogTime: feb2.At(19, 45)},
	}

	m := runEngine(in)

	// The worked Sunday stays out of every counter; it is paid once, as
	// a weekoff.
	assert.Equal(t, 26, m.FullDays)
	assert.Zero(t, m.HalfDays)
	assert.Zero(t, m.AbsentDays)
	assert.Zero(t, m.LateDays)
	assert.Zero(t, m.LateBy30MinutesDays)

	d := dayFor(t, m, "2025-02-02")
	assert.Equal(t, attendance.StatusWeekoff, d.Status)
	assert.Equal(t, attendance.WeekoffPaid, d.WeekoffType)
	assert.InDelta(t, 9.0, d.TotalHours, 0.01)

	// Every day of the cycle lands in exactly one bucket.
	var weekoffs int
	for _, day := range m.Days {
		if day.Status == attendance.StatusWeekoff {
			weekoffs++
		}
	}
	assert.Equal(t, 31, m.FullDays+m.HalfDays+int(m.AbsentDays)+weekoffs)
}

func TestEngineSundayLeaveIgnored(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in)
	in.paidLeaves = []leave.LeaveDate{{Date: mustDate(t, "2025-02-02"), Value: 1.0}}

	m := runEngine(in)

	d := dayFor(t, m, "2025-02-02")
	assert.Equal(t, attendance.StatusWeekoff, d.Status)
	assert.Empty(t, d.LeaveKind)
	assert.Zero(t, m.AbsentDays)
}

func TestEngineLateCounters(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-04", "2025-02-05", "2025-02-06")

	feb4 := mustDate(t, "2025-02-04")
	feb5 := mustDate(t, "2025-02-05")
	feb6 := mustDate(t, "2025-02-06")
	// Late beyond 30 minutes but still a full day.
	in.punches[feb4] = []punch.Log{{LogTime: feb4.At(10, 45)}, {LogTime: feb4.At(19, 45)}}
	// Late half day leaving early: counted late, but not in the
	// 30-minute bucket.
	in.punches[feb5] = []punch.Log{{LogTime: feb5.At(10, 20)}, {LogTime: feb5.At(18, 0)}}
	// Absent and late by 30 earns nothing.
	in.punches[feb6] = []punch.Log{{LogTime: feb6.At(18, 30)}}

	m := runEngine(in)

	assert.Equal(t, 2, m.LateDays)
	assert.Equal(t, 1, m.LateBy30MinutesDays)
	assert.Equal(t, 1, m.HalfDays)
	assert.Equal(t, 1.0, m.AbsentDays)
	assert.Equal(t, 1, m.EarlyExits)
}

func TestEngineRegularization(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-05")
	in.regularizations = []regularization.Regularization{{
		EmployeeCode:      "EMP001",
		Date:              mustDate(t, "2025-02-05"),
		RegularizedStatus: regularization.StatusFullDay,
		Status:            regularization.StatusApproved,
	}}

	m := runEngine(in)

	assert.Equal(t, 26, m.FullDays)
	assert.Zero(t, m.AbsentDays)
	assert.Zero(t, m.OriginalLOPForSundayRule)

	d := dayFor(t, m, "2025-02-05")
	assert.True(t, d.IsRegularized)
	assert.Equal(t, attendance.StatusFullDay, d.Status)
	assert.Equal(t, attendance.StatusAbsent, d.OriginalStatus)
	assert.False(t, d.IsLate)
}

func TestEngineRegularizedLateHalfDay(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-05")
	feb5 := mustDate(t, "2025-02-05")
	in.punches[feb5] = []punch.Log{{LogTime: feb5.At(10, 20)}, {LogTime: feb5.At(19, 0)}}
	in.regularizations = []regularization.Regularization{{
		EmployeeCode:      "EMP001",
		Date:              feb5,
		RegularizedStatus: regularization.StatusFullDay,
		Status:            regularization.StatusApproved,
	}}

	m := runEngine(in)

	// The upgrade clears the late flag and its counter contribution.
	assert.Equal(t, 26, m.FullDays)
	assert.Zero(t, m.HalfDays)
	assert.Zero(t, m.LateDays)
}

func TestEngineSundayRuleThreshold(t *testing.T) {
	absences := []string{"2025-02-03", "2025-02-04", "2025-02-05", "2025-02-06", "2025-02-07"}

	in := baseInput(t)
	fillWeekdays(t, &in, absences...)

	m := runEngine(in)
	assert.Equal(t, 5.0, m.OriginalLOPForSundayRule)
	for _, d := range m.Days {
		if d.IsSunday {
			assert.Equal(t, attendance.WeekoffUnpaid, d.WeekoffType, "sunday %s", d.Date)
		}
	}
}

func TestEngineSundayRuleFrozenBeforeLeaves(t *testing.T) {
	absences := []string{"2025-02-03", "2025-02-04", "2025-02-05", "2025-02-06", "2025-02-07"}

	in := baseInput(t)
	fillWeekdays(t, &in, absences...)
	for _, s := range absences {
		in.paidLeaves = append(in.paidLeaves, leave.LeaveDate{Date: mustDate(t, s), Value: 1.0})
	}

	m := runEngine(in)

	// Leaves erase the absences from the counters...
	assert.Zero(t, m.AbsentDays)
	// ...but the Sunday rule reads the count frozen before leaves ran.
	assert.Equal(t, 5.0, m.OriginalLOPForSundayRule)
	for _, d := range m.Days {
		if d.IsSunday {
			assert.Equal(t, attendance.WeekoffUnpaid, d.WeekoffType, "sunday %s", d.Date)
		}
	}
}

func TestEngineLeaves(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-05", "2025-02-06", "2025-02-07", "2025-02-10")

	feb6 := mustDate(t, "2025-02-06")
	// Half day on the 6th.
	in.punches[feb6] = []punch.Log{{LogTime: feb6.At(10, 0)}, {LogTime: feb6.At(16, 0)}}

	in.paidLeaves = []leave.LeaveDate{
		{Date: mustDate(t, "2025-02-05"), Value: 1.0},
		{Date: mustDate(t, "2025-02-07"), Value: 0.5},
	}
	in.casualLeaves = []leave.LeaveDate{
		{Date: feb6, Value: 1.0},
		{Date: mustDate(t, "2025-02-10"), Value: 1.0},
	}

	m := runEngine(in)

	// Feb 5: absent + full paid leave clears the absence.
	assert.Equal(t, attendance.StatusPaidLeave, dayFor(t, m, "2025-02-05").Status)
	// Feb 7: absent + half paid leave keeps the absence counted.
	assert.Equal(t, attendance.StatusPaidLeave, dayFor(t, m, "2025-02-07").Status)
	// Feb 6: half day + casual leave keeps the worked half counted.
	assert.Equal(t, attendance.StatusCasualLeave, dayFor(t, m, "2025-02-06").Status)
	// Feb 10: absent + full casual leave clears the absence.
	assert.Equal(t, attendance.StatusCasualLeave, dayFor(t, m, "2025-02-10").Status)

	assert.Equal(t, 1.0, m.AbsentDays) // only Feb 7 remains
	assert.Equal(t, 1, m.HalfDays)     // Feb 6 keeps its half credit
}

func TestEngineLeaveSkipsRegularizedDay(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-05")
	feb5 := mustDate(t, "2025-02-05")
	in.regularizations = []regularization.Regularization{{
		EmployeeCode:      "EMP001",
		Date:              feb5,
		RegularizedStatus: regularization.StatusFullDay,
		Status:            regularization.StatusApproved,
	}}
	in.paidLeaves = []leave.LeaveDate{{Date: feb5, Value: 1.0}}

	m := runEngine(in)
	assert.Equal(t, attendance.StatusFullDay, dayFor(t, m, "2025-02-05").Status)
	assert.Empty(t, dayFor(t, m, "2025-02-05").LeaveKind)
}

func TestEnginePartialCycle(t *testing.T) {
	in := baseInput(t)
	in.joinDate = mustDate(t, "2025-02-13") // Thursday
	fillWeekdays(t, &in, "2025-02-13", "2025-02-14", "2025-02-15")

	m := runEngine(in)

	assert.Equal(t, "2025-02-13", m.EffectiveStart.String())
	assert.Equal(t, 13, m.TotalDaysInEffectiveCycle)

	// Days before joining are inert.
	assert.Equal(t, attendance.StatusNotActive, dayFor(t, m, "2025-02-12").Status)
	assert.Equal(t, attendance.StatusNotActive, dayFor(t, m, "2025-02-09").Status)

	// Joining day absences do not count toward the Sunday rule.
	assert.Equal(t, 2.0, m.OriginalLOPForSundayRule)

	// Feb 16's week is entirely absent or inactive, so it is unpaid; the
	// following week is worked, so Feb 23 is paid.
	assert.Equal(t, attendance.WeekoffUnpaid, dayFor(t, m, "2025-02-16").WeekoffType)
	assert.Equal(t, attendance.WeekoffPaid, dayFor(t, m, "2025-02-23").WeekoffType)
}

func TestEngineExitMidCycle(t *testing.T) {
	exit := mustDate(t, "2025-02-14")
	in := baseInput(t)
	in.exitDate = &exit
	fillWeekdays(t, &in)

	m := runEngine(in)

	assert.Equal(t, "2025-02-14", m.EffectiveEnd.String())
	assert.Equal(t, attendance.StatusNotActive, dayFor(t, m, "2025-02-15").Status)
	assert.Equal(t, attendance.StatusNotActive, dayFor(t, m, "2025-02-16").Status)

	// Sundays before the exit are decided normally.
	assert.Equal(t, attendance.WeekoffPaid, dayFor(t, m, "2025-02-09").WeekoffType)
}

func TestSandwichSundays(t *testing.T) {
	in := baseInput(t)
	fillWeekdays(t, &in, "2025-02-08", "2025-02-10")

	m := runEngine(in)
	require.Equal(t, attendance.WeekoffPaid, dayFor(t, m, "2025-02-09").WeekoffType)

	index := make(map[paycycle.LocalDate]int)
	for i, d := range m.Days {
		index[d.Date] = i
	}
	sandwichSundays(&m, index)

	assert.Equal(t, attendance.WeekoffUnpaid, dayFor(t, m, "2025-02-09").WeekoffType)
	// Other Sundays keep their paid status.
	assert.Equal(t, attendance.WeekoffPaid, dayFor(t, m, "2025-02-02").WeekoffType)
}
