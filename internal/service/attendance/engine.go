package attendance

import (
	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Sundays become unpaid weekoffs once the frozen loss-of-pay count
// reaches this many days.
const sundayRuleLOPThreshold = 5

// engineInput carries everything the passes need, pre-fetched, so the
// pipeline itself stays pure and deterministic.
type engineInput struct {
	employeeCode string
	month        string

	cycleStart paycycle.LocalDate
	cycleEnd   paycycle.LocalDate
	joinDate   paycycle.LocalDate
	exitDate   *paycycle.LocalDate

	defaultShift string
	assignments  []shift.Assignment
	timings      map[string]shift.Timing

	punches  map[paycycle.LocalDate][]punch.Log
	holidays map[paycycle.LocalDate]string

	regularizations []regularization.Regularization
	paidLeaves      []leave.LeaveDate
	casualLeaves    []leave.LeaveDate
}

// runEngine executes the passes in order: raw classification,
// regularizations, the Sunday-rule freeze, leaves, then Sunday marking.
// Each pass mutates the day list the previous pass produced.
func runEngine(in engineInput) attendance.MonthlyAttendance {
	effStart := in.cycleStart
	if !in.joinDate.IsZero() && in.joinDate.After(effStart) {
		effStart = in.joinDate
	}
	effEnd := in.cycleEnd
	if in.exitDate != nil && in.exitDate.Before(effEnd) {
		effEnd = *in.exitDate
	}

	m := attendance.MonthlyAttendance{
		EmployeeCode:     in.employeeCode,
		Month:            in.month,
		CycleStart:       in.cycleStart,
		CycleEnd:         in.cycleEnd,
		EffectiveStart:   effStart,
		EffectiveEnd:     effEnd,
		PaidLeaveDates:   in.paidLeaves,
		CasualLeaveDates: in.casualLeaves,
		Regularizations:  in.regularizations,
	}

	index := make(map[paycycle.LocalDate]int)
	for d := in.cycleStart; !d.After(in.cycleEnd); d = d.AddDays(1) {
		timing := shift.Resolve(d, in.assignments, in.timings, in.defaultShift)
		rec := attendance.DayRecord{
			Date:          d,
			ShiftName:     timing.ShiftName,
			ExpectedHours: timing.WorkHours,
			IsSunday:      d.IsSunday(),
		}
		if name, ok := in.holidays[d]; ok {
			rec.IsHoliday = true
			rec.HolidayName = name
		}
		if d.Before(effStart) || d.After(effEnd) {
			rec.Status = attendance.StatusNotActive
		} else {
			rec.DayHours = ClassifyDay(d, in.punches[d], timing)
			if rec.IsSunday {
				// Sundays never enter the day counters; markSundays
				// decides their pay as weekoffs. Hours worked on one
				// still show in the monthly total.
				m.TotalWorkedHours += rec.DayHours.TotalHours
			} else {
				accumulate(&m, rec.DayHours)
			}
		}
		index[d] = len(m.Days)
		m.Days = append(m.Days, rec)
	}
	if !effStart.After(effEnd) {
		m.TotalDaysInEffectiveCycle = effStart.DaysUntil(effEnd) + 1
	}

	applyRegularizations(&m, index, in.regularizations)
	m.OriginalLOPForSundayRule = sundayRuleLOP(&m, in.joinDate, in.exitDate)
	applyLeaves(&m, index, in.paidLeaves, leave.KindPaid)
	applyLeaves(&m, index, in.casualLeaves, leave.KindCasual)
	markSundays(&m, index, in.joinDate, in.exitDate)

	return m
}

// accumulate folds one classified weekday into the monthly counters.
// Late counters only apply to days that earned credit, and the
// 30-minute counter only to full days so short-hours days are not
// penalized twice.
func accumulate(m *attendance.MonthlyAttendance, h attendance.DayHours) {
	switch h.Status {
	case attendance.StatusFullDay:
		m.FullDays++
	case attendance.StatusHalfDay:
		m.HalfDays++
	case attendance.StatusAbsent:
		m.AbsentDays++
	}

	credited := h.Status == attendance.StatusFullDay || h.Status == attendance.StatusHalfDay
	if h.IsLate && credited {
		m.LateDays++
	}
	if h.IsLateBy30Minutes && h.Status == attendance.StatusFullDay {
		m.LateBy30MinutesDays++
	}
	if h.IsEarlyExit {
		m.EarlyExits++
	}
	m.TotalWorkedHours += h.TotalHours
}

// applyRegularizations upgrades approved days. A regularization never
// downgrades: absent can become half or full, half can become full.
func applyRegularizations(m *attendance.MonthlyAttendance, index map[paycycle.LocalDate]int, regs []regularization.Regularization) {
	for _, reg := range regs {
		if reg.Date.Before(m.EffectiveStart) || reg.Date.After(m.EffectiveEnd) {
			continue
		}
		i, ok := index[reg.Date]
		if !ok {
			continue
		}
		rec := &m.Days[i]
		// Sundays are weekoffs, not regularizable working days, and they
		// are absent from the counters this pass adjusts.
		if rec.IsSunday {
			continue
		}
		if rec.Status != attendance.StatusAbsent && rec.Status != attendance.StatusHalfDay {
			continue
		}

		target := attendance.StatusFullDay
		if reg.RegularizedStatus == regularization.StatusHalfDay {
			target = attendance.StatusHalfDay
		}
		if target == rec.Status {
			continue
		}

		rec.OriginalStatus = rec.Status
		rec.IsRegularized = true

		switch rec.Status {
		case attendance.StatusAbsent:
			m.AbsentDays--
		case attendance.StatusHalfDay:
			m.HalfDays--
			// Only half days contributed to lateDays in the first pass.
			if rec.IsLate {
				m.LateDays--
			}
		}
		rec.IsLate = false
		rec.IsLateBy30Minutes = false
		rec.MinutesLate = nil

		rec.Status = target
		if target == attendance.StatusFullDay {
			m.FullDays++
		} else {
			m.HalfDays++
		}
	}
}

// sundayRuleLOP freezes the loss-of-pay count the Sunday rule reads.
// It runs after regularizations and before leaves, so later leave
// approvals cannot flip a Sunday between paid and unpaid. Join and exit
// dates themselves are excluded.
func sundayRuleLOP(m *attendance.MonthlyAttendance, join paycycle.LocalDate, exit *paycycle.LocalDate) float64 {
	var lop float64
	for _, d := range m.Days {
		if d.IsSunday || d.Status == attendance.StatusNotActive {
			continue
		}
		if !join.IsZero() && !d.Date.After(join) {
			continue
		}
		if exit != nil && !d.Date.Before(*exit) {
			continue
		}
		switch d.Status {
		case attendance.StatusAbsent:
			lop++
		case attendance.StatusHalfDay:
			lop += 0.5
		}
	}
	return lop
}

// applyLeaves converts absent and half days into leave days. Full days
// are already paid through attendance and stay untouched, as do
// regularized days; a regularization and a leave on the same date are
// mutually exclusive and the regularization wins.
func applyLeaves(m *attendance.MonthlyAttendance, index map[paycycle.LocalDate]int, dates []leave.LeaveDate, kind string) {
	for _, ld := range dates {
		i, ok := index[ld.Date]
		if !ok {
			continue
		}
		rec := &m.Days[i]
		// A leave dated on a Sunday has nothing to credit; the day is a
		// weekoff and never reached the counters.
		if rec.IsSunday || rec.IsRegularized {
			continue
		}
		if rec.Status != attendance.StatusAbsent && rec.Status != attendance.StatusHalfDay {
			continue
		}

		orig := rec.Status
		rec.LeaveKind = kind
		rec.LeaveValue = ld.Value

		if kind == leave.KindPaid {
			rec.Status = attendance.StatusPaidLeave
			if ld.Value == 1.0 {
				if orig == attendance.StatusAbsent {
					m.AbsentDays--
				} else {
					m.HalfDays--
				}
			}
		} else {
			rec.Status = attendance.StatusCasualLeave
			// The worked half of an original half day keeps its counter;
			// the casual credit is accounted separately.
			if ld.Value == 1.0 && orig == attendance.StatusAbsent {
				m.AbsentDays--
			}
		}
	}
}

// markSundays turns every effective Sunday into a weekoff and decides
// whether it is paid. The frozen LOP count rules first; partial-cycle
// employees must additionally show a credited day in the Mon-Sat of the
// same week.
func markSundays(m *attendance.MonthlyAttendance, index map[paycycle.LocalDate]int, join paycycle.LocalDate, exit *paycycle.LocalDate) {
	partialCycle := (!join.IsZero() && join.After(m.CycleStart)) ||
		(exit != nil && exit.Before(m.CycleEnd))

	for i := range m.Days {
		d := &m.Days[i]
		if !d.IsSunday || d.Status == attendance.StatusNotActive {
			continue
		}
		d.Status = attendance.StatusWeekoff

		switch {
		case m.OriginalLOPForSundayRule >= sundayRuleLOPThreshold:
			d.WeekoffType = attendance.WeekoffUnpaid
		case partialCycle:
			d.WeekoffType = attendance.WeekoffUnpaid
			weekStart, _ := paycycle.WeekBounds(d.Date)
			for x := weekStart; x.Before(d.Date); x = x.AddDays(1) {
				j, ok := index[x]
				if !ok {
					continue
				}
				rec := m.Days[j]
				if rec.Status != attendance.StatusAbsent && rec.Status != attendance.StatusNotActive {
					d.WeekoffType = attendance.WeekoffPaid
					break
				}
			}
		default:
			d.WeekoffType = attendance.WeekoffPaid
		}
	}
}

// sandwichSundays would additionally unpay a Sunday flanked by an absent
// Saturday and an absent Monday. Product has not signed off on it, so
// markSundays does not call it; it is kept as the extension point.
func sandwichSundays(m *attendance.MonthlyAttendance, index map[paycycle.LocalDate]int) {
	for i := range m.Days {
		d := &m.Days[i]
		if !d.IsSunday || d.Status != attendance.StatusWeekoff || d.WeekoffType != attendance.WeekoffPaid {
			continue
		}
		satIdx, okSat := index[d.Date.AddDays(-1)]
		monIdx, okMon := index[d.Date.AddDays(1)]
		if !okSat || !okMon {
			continue
		}
		if m.Days[satIdx].Status == attendance.StatusAbsent && m.Days[monIdx].Status == attendance.StatusAbsent {
			d.WeekoffType = attendance.WeekoffUnpaid
		}
	}
}
