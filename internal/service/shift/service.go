package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type ShiftServiceImpl struct {
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *ShiftServiceImpl) GetShift(ctx context.Context, name string) (shift.Shift, error) {
	return s.shiftRepo.GetByName(ctx, name)
}

func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.Shift, error) {
	return s.shiftRepo.List(ctx)
}

func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.SaveShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}
	if _, err := s.shiftRepo.GetByName(ctx, req.Name); err == nil {
		return shift.Shift{}, shift.ErrShiftExists
	} else if !errors.Is(err, shift.ErrShiftNotFound) {
		return shift.Shift{}, fmt.Errorf("failed to check shift %s: %w", req.Name, err)
	}

	row := req.ToShift()
	if err := s.shiftRepo.Create(ctx, row); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift %s: %w", req.Name, err)
	}
	return row, nil
}

func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req shift.SaveShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}
	if _, err := s.shiftRepo.GetByName(ctx, req.Name); err != nil {
		return shift.Shift{}, err
	}

	row := req.ToShift()
	if err := s.shiftRepo.Update(ctx, row); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to update shift %s: %w", req.Name, err)
	}
	return row, nil
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, name string) error {
	return s.shiftRepo.Delete(ctx, name)
}

func (s *ShiftServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}
	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}
	if _, err := s.shiftRepo.GetByName(ctx, req.ShiftName); err != nil {
		return shift.Assignment{}, err
	}

	from, err := paycycle.ParseLocalDate(req.FromDate)
	if err != nil {
		return shift.Assignment{}, err
	}
	to, err := paycycle.ParseLocalDate(req.ToDate)
	if err != nil {
		return shift.Assignment{}, err
	}

	// Overlaps are allowed; the newest assignment wins at resolution time.
	created, err := s.assignmentRepo.Create(ctx, shift.Assignment{
		EmployeeCode: req.EmployeeCode,
		ShiftName:    req.ShiftName,
		FromDate:     from,
		ToDate:       to,
	})
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to assign shift: %w", err)
	}
	return created, nil
}

func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, employeeCode string) ([]shift.Assignment, error) {
	return s.assignmentRepo.ListForEmployee(ctx, employeeCode)
}

func (s *ShiftServiceImpl) RemoveAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}

func (s *ShiftServiceImpl) ResolveForDate(ctx context.Context, employeeCode string, date paycycle.LocalDate) (shift.Timing, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if err != nil {
		return shift.Timing{}, fmt.Errorf("failed to get employee %s: %w", employeeCode, err)
	}

	assignments, err := s.assignmentRepo.ListOverlapping(ctx, employeeCode, date, date)
	if err != nil {
		return shift.Timing{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	defaultShift := ""
	if emp.ShiftName != nil {
		defaultShift = *emp.ShiftName
	}

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

	return shift.Resolve(date, assignments, timings, defaultShift), nil
}
