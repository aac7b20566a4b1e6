package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
	"github.com/sevaksoft/payroll-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db           *database.DB
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{db: db, leaveRepo: leaveRepo, employeeRepo: employeeRepo}
}

func (s *LeaveServiceImpl) SaveMonthlyLeaves(ctx context.Context, req leave.SaveLeaveRequest) (leave.MonthlyUsage, error) {
	if err := req.Validate(); err != nil {
		return leave.MonthlyUsage{}, err
	}

	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return leave.MonthlyUsage{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	cycleStart, cycleEnd, err := paycycle.CycleRange(req.Month)
	if err != nil {
		return leave.MonthlyUsage{}, err
	}

	paid, err := convertDates("paid_leave_dates", req.PaidLeaveDates, cycleStart, cycleEnd)
	if err != nil {
		return leave.MonthlyUsage{}, err
	}
	casual, err := convertDates("casual_leave_dates", req.CasualLeaveDates, cycleStart, cycleEnd)
	if err != nil {
		return leave.MonthlyUsage{}, err
	}

	usage := leave.MonthlyUsage{
		EmployeeCode:     req.EmployeeCode,
		Month:            req.Month,
		PaidLeaveDates:   paid,
		CasualLeaveDates: casual,
		UpdatedBy:        req.UpdatedBy,
		UpdatedAt:        time.Now().UTC(),
	}
	year, _, err := paycycle.ParseMonth(req.Month)
	if err != nil {
		return leave.MonthlyUsage{}, err
	}

	// The monthly row and the annual entitlement counters must not diverge.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.UpsertMonthlyUsage(txCtx, usage); err != nil {
			return fmt.Errorf("failed to save monthly leaves: %w", err)
		}
		return s.refreshEntitlementUsage(txCtx, req.EmployeeCode, year)
	})
	if err != nil {
		return leave.MonthlyUsage{}, err
	}

	return usage, nil
}

func (s *LeaveServiceImpl) GetMonthlyUsage(ctx context.Context, employeeCode, month string) (leave.MonthlyUsage, error) {
	if !paycycle.IsValidMonth(month) {
		return leave.MonthlyUsage{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return s.leaveRepo.GetMonthlyUsage(ctx, employeeCode, month)
}

func (s *LeaveServiceImpl) GetEntitlementSummary(ctx context.Context, employeeCode string, year int) (leave.EntitlementResponse, error) {
	ent, err := s.leaveRepo.GetEntitlement(ctx, employeeCode, year)
	if err != nil {
		return leave.EntitlementResponse{}, err
	}
	used := ent.UsedPaidLeaves + ent.UsedCasualLeaves
	return leave.EntitlementResponse{
		EmployeeCode:     ent.EmployeeCode,
		Year:             ent.Year,
		AllowedLeaves:    ent.AllowedLeaves,
		UsedPaidLeaves:   ent.UsedPaidLeaves,
		UsedCasualLeaves: ent.UsedCasualLeaves,
		RemainingLeaves:  ent.AllowedLeaves - used,
	}, nil
}

// refreshEntitlementUsage recomputes the annual counters from the stored
// monthly rows. Employees without an entitlement row simply have no
// annual cap.
func (s *LeaveServiceImpl) refreshEntitlementUsage(ctx context.Context, employeeCode string, year int) error {
	if _, err := s.leaveRepo.GetEntitlement(ctx, employeeCode, year); err != nil {
		if errors.Is(err, leave.ErrEntitlementNotFound) {
			return nil
		}
		return err
	}

	rows, err := s.leaveRepo.ListUsageForYear(ctx, employeeCode, year)
	if err != nil {
		return err
	}
	var usedPaid, usedCasual float64
	for _, row := range rows {
		for _, d := range row.PaidLeaveDates {
			usedPaid += d.Value
		}
		for _, d := range row.CasualLeaveDates {
			usedCasual += d.Value
		}
	}
	return s.leaveRepo.UpdateEntitlementUsage(ctx, employeeCode, year, usedPaid, usedCasual)
}

func convertDates(field string, inputs []leave.LeaveDateInput, cycleStart, cycleEnd paycycle.LocalDate) ([]leave.LeaveDate, error) {
	dates := make([]leave.LeaveDate, 0, len(inputs))
	for _, in := range inputs {
		d, err := paycycle.ParseLocalDate(in.Date)
		if err != nil {
			return nil, validator.ValidationErrors{{Field: field, Message: "Invalid date " + in.Date}}
		}
		if d.Before(cycleStart) || d.After(cycleEnd) {
			return nil, validator.ValidationErrors{{
				Field:   field,
				Message: fmt.Sprintf("Date %s is outside cycle %s to %s", in.Date, cycleStart, cycleEnd),
			}}
		}
		dates = append(dates, leave.LeaveDate{Date: d, Value: in.Value})
	}
	return dates, nil
}
