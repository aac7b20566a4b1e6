package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	attendancesvc "github.com/sevaksoft/payroll-backend-go/internal/service/attendance"
)

// autoHoldProbeDays is how many leading days of the next calendar month
// the no-show probe inspects.
const autoHoldProbeDays = 5

// runAutoHoldCheck places an AUTO hold on next month's payout when the
// employee has not shown up on any working day among the 1st through 5th
// of the next calendar month. The check is best-effort: every failure is
// logged and swallowed so it can never fail the salary calculation.
func (s *SalaryServiceImpl) runAutoHoldCheck(ctx context.Context, emp employee.Employee, month string) {
	if err := s.autoHoldCheck(ctx, emp, month); err != nil {
		slog.Warn("auto-hold check failed",
			"employee_code", emp.EmployeeCode, "month", month, "error", err)
	}
}

func (s *SalaryServiceImpl) autoHoldCheck(ctx context.Context, emp employee.Employee, month string) error {
	nextMonth, err := paycycle.NextMonth(month)
	if err != nil {
		return err
	}
	year, m, err := paycycle.ParseMonth(month)
	if err != nil {
		return err
	}

	// Dates 1-5 of the calendar month after the cycle label.
	probeStart := paycycle.DateOf(time.Date(year, m+1, 1, 0, 0, 0, 0, time.UTC))
	probeEnd := probeStart.AddDays(autoHoldProbeDays - 1)

	// An employee who exited before the probe window, or joins after it,
	// is legitimately absent there.
	if emp.ExitDate != nil && emp.ExitDate.Before(probeStart) {
		return nil
	}
	if !emp.JoiningDate.IsZero() && emp.JoiningDate.After(probeEnd) {
		return nil
	}

	existing, err := s.holdRepo.GetActive(ctx, emp.EmployeeCode, nextMonth)
	if err != nil {
		return fmt.Errorf("failed to check existing hold: %w", err)
	}
	if existing != nil {
		return nil
	}

	punches, err := s.punchRepo.GetForDates(ctx, emp.EmployeeCode, probeStart, probeEnd)
	if err != nil {
		return fmt.Errorf("failed to get punch logs: %w", err)
	}
	grouped := attendancesvc.GroupByWorkday(punches)

	assignments, err := s.assignmentRepo.ListOverlapping(ctx, emp.EmployeeCode, probeStart, probeEnd)
	if err != nil {
		return fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defaultShift := deref(emp.ShiftName)
	timings := s.probeTimings(ctx, assignments, defaultShift)

	for d := probeStart; !d.After(probeEnd); d = d.AddDays(1) {
		if d.IsSunday() || !emp.IsActiveOn(d) {
			continue
		}
		timing := shift.Resolve(d, assignments, timings, defaultShift)
		if attendancesvc.ClassifyDay(d, grouped[d], timing).Status != attendance.StatusAbsent {
			return nil
		}
	}

	_, err = s.holdRepo.Create(ctx, salary.Hold{
		EmployeeCode: emp.EmployeeCode,
		Month:        nextMonth,
		HoldType:     salary.HoldAuto,
		Reason:       fmt.Sprintf("No attendance on the first %d days of %s", autoHoldProbeDays, nextMonth),
	})
	if err != nil {
		// Another batch worker can win the race; the hold is in place
		// either way.
		if errors.Is(err, salary.ErrActiveHoldExists) {
			return nil
		}
		return fmt.Errorf("failed to create auto hold: %w", err)
	}

	slog.Info("auto hold created",
		"employee_code", emp.EmployeeCode, "month", nextMonth)
	return nil
}

func (s *SalaryServiceImpl) probeTimings(ctx context.Context, assignments []shift.Assignment, defaultShift string) map[string]shift.Timing {
	names := make(map[string]struct{})
	for _, a := range assignments {
		names[a.ShiftName] = struct{}{}
	}
	if defaultShift != "" {
		names[defaultShift] = struct{}{}
	}

	timings := make(map[string]shift.Timing, len(names))
	for name := range names {
		row, err := s.shiftRepo.GetByName(ctx, name)
		if err != nil {
			continue
		}
		if t, err := shift.ParseShift(row); err == nil {
			timings[name] = t
		}
	}
	return timings
}
