package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/holiday"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type AttendanceServiceImpl struct {
	employeeRepo       employee.EmployeeRepository
	punchRepo          punch.LogRepository
	shiftRepo          shift.ShiftRepository
	assignmentRepo     shift.AssignmentRepository
	leaveRepo          leave.LeaveRepository
	regularizationRepo regularization.RegularizationRepository
	holidayRepo        holiday.HolidayRepository
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.LogRepository,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	leaveRepo leave.LeaveRepository,
	regularizationRepo regularization.RegularizationRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		employeeRepo:       employeeRepo,
		punchRepo:          punchRepo,
		shiftRepo:          shiftRepo,
		assignmentRepo:     assignmentRepo,
		leaveRepo:          leaveRepo,
		regularizationRepo: regularizationRepo,
		holidayRepo:        holidayRepo,
	}
}

func (s *AttendanceServiceImpl) CalculateMonthlyHours(ctx context.Context, req attendance.MonthlyHoursRequest) (attendance.MonthlyAttendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendance{}, err
	}

	cycleStart, cycleEnd, err := paycycle.CycleRange(req.Month)
	if err != nil {
		return attendance.MonthlyAttendance{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	joinDate := emp.JoiningDate
	if req.JoinDate != nil {
		if joinDate, err = paycycle.ParseLocalDate(*req.JoinDate); err != nil {
			return attendance.MonthlyAttendance{}, err
		}
	}
	exitDate := emp.ExitDate
	if req.ExitDate != nil {
		d, err := paycycle.ParseLocalDate(*req.ExitDate)
		if err != nil {
			return attendance.MonthlyAttendance{}, err
		}
		exitDate = &d
	}

	assignments, err := s.assignmentRepo.ListOverlapping(ctx, req.EmployeeCode, cycleStart, cycleEnd)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	defaultShift := ""
	if emp.ShiftName != nil {
		defaultShift = *emp.ShiftName
	}
	timings := s.loadTimings(ctx, assignments, defaultShift)

	punches, err := s.punchRepo.GetForDates(ctx, req.EmployeeCode, cycleStart, cycleEnd)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to get punch logs: %w", err)
	}

	regs, err := s.regularizationRepo.ListApprovedBetween(ctx, req.EmployeeCode, cycleStart, cycleEnd)
	if err != nil {
		return attendance.MonthlyAttendance{}, fmt.Errorf("failed to list regularizations: %w", err)
	}

	paidLeaves, casualLeaves, err := s.resolveLeaves(ctx, req)
	if err != nil {
		return attendance.MonthlyAttendance{}, err
	}

	// Holidays only annotate the breakdown, so a lookup failure degrades
	// instead of failing the calculation.
	holidays := make(map[paycycle.LocalDate]string)
	if rows, err := s.holidayRepo.ListActiveBetween(ctx, cycleStart, cycleEnd); err != nil {
		slog.Warn("failed to list holidays, breakdown will omit them",
			"month", req.Month, "error", err)
	} else {
		for _, h := range rows {
			holidays[h.Date] = h.Name
		}
	}

	return runEngine(engineInput{
		employeeCode:    req.EmployeeCode,
		month:           req.Month,
		cycleStart:      cycleStart,
		cycleEnd:        cycleEnd,
		joinDate:        joinDate,
		exitDate:        exitDate,
		defaultShift:    defaultShift,
		assignments:     assignments,
		timings:         timings,
		punches:         GroupByWorkday(punches),
		holidays:        holidays,
		regularizations: regs,
		paidLeaves:      paidLeaves,
		casualLeaves:    casualLeaves,
	}), nil
}

// resolveLeaves honors the nil-versus-empty contract: a nil slice means
// "fetch the stored monthly usage", an empty one means "explicitly none".
func (s *AttendanceServiceImpl) resolveLeaves(ctx context.Context, req attendance.MonthlyHoursRequest) ([]leave.LeaveDate, []leave.LeaveDate, error) {
	paid, casual := req.PaidLeaves, req.CasualLeaves
	if paid != nil && casual != nil {
		return paid, casual, nil
	}

	usage, err := s.leaveRepo.GetMonthlyUsage(ctx, req.EmployeeCode, req.Month)
	if err != nil {
		if errors.Is(err, leave.ErrUsageNotFound) {
			usage = leave.MonthlyUsage{}
		} else {
			return nil, nil, fmt.Errorf("failed to get monthly leave usage: %w", err)
		}
	}
	if paid == nil {
		paid = usage.PaidLeaveDates
	}
	if casual == nil {
		casual = usage.CasualLeaveDates
	}
	return paid, casual, nil
}

// loadTimings fetches and parses every shift the cycle can reference.
// A missing or malformed shift is skipped with a warning and the day
// falls through to the default timing.
func (s *AttendanceServiceImpl) loadTimings(ctx context.Context, assignments []shift.Assignment, defaultShift string) map[string]shift.Timing {
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
			slog.Warn("failed to load shift, falling back to default timing",
				"shift", name, "error", err)
			continue
		}
		t, err := shift.ParseShift(row)
		if err != nil {
			slog.Warn("failed to parse shift, falling back to default timing",
				"shift", name, "error", err)
			continue
		}
		timings[name] = t
	}
	return timings
}
