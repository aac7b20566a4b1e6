package salary

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

func (s *SalaryServiceImpl) SaveAdjustment(ctx context.Context, req salary.SaveAdjustmentRequest) (salary.Adjustment, error) {
	if err := req.Validate(); err != nil {
		return salary.Adjustment{}, err
	}
	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return salary.Adjustment{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	adj, err := s.adjustmentRepo.Upsert(ctx, salary.Adjustment{
		EmployeeCode: req.EmployeeCode,
		Month:        req.Month,
		Type:         salary.AdjustmentType(req.Type),
		Category:     strings.ToUpper(strings.TrimSpace(req.Category)),
		Amount:       req.Amount,
		Description:  req.Description,
	})
	if err != nil {
		return salary.Adjustment{}, fmt.Errorf("failed to save adjustment: %w", err)
	}
	return adj, nil
}

func (s *SalaryServiceImpl) ListAdjustments(ctx context.Context, employeeCode, month string) ([]salary.Adjustment, error) {
	if !paycycle.IsValidMonth(month) {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return s.adjustmentRepo.ListForMonth(ctx, employeeCode, month)
}

func (s *SalaryServiceImpl) DeleteAdjustment(ctx context.Context, id int64) error {
	return s.adjustmentRepo.Delete(ctx, id)
}

func (s *SalaryServiceImpl) CreateHold(ctx context.Context, req salary.CreateHoldRequest) (salary.Hold, error) {
	if err := req.Validate(); err != nil {
		return salary.Hold{}, err
	}
	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return salary.Hold{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	hold, err := s.holdRepo.Create(ctx, salary.Hold{
		EmployeeCode: req.EmployeeCode,
		Month:        req.Month,
		HoldType:     salary.HoldManual,
		Reason:       req.Reason,
	})
	if err != nil {
		return salary.Hold{}, err
	}
	return hold, nil
}

func (s *SalaryServiceImpl) ReleaseHold(ctx context.Context, id int64, actor string) error {
	return s.holdRepo.Release(ctx, id, actor)
}

func (s *SalaryServiceImpl) ListHolds(ctx context.Context, month string) ([]salary.Hold, error) {
	if !paycycle.IsValidMonth(month) {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return s.holdRepo.ListForMonth(ctx, month)
}

func (s *SalaryServiceImpl) SetOvertimeToggle(ctx context.Context, req salary.SetOvertimeToggleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.overtimeRepo.Set(ctx, salary.OvertimeToggle{
		EmployeeCode:      req.EmployeeCode,
		Month:             req.Month,
		IsOvertimeEnabled: req.IsOvertimeEnabled,
	})
}
