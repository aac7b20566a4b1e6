package regularization

import (
	"context"
	"fmt"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type RegularizationServiceImpl struct {
	regularizationRepo regularization.RegularizationRepository
	employeeRepo       employee.EmployeeRepository
}

func NewRegularizationService(
	regularizationRepo regularization.RegularizationRepository,
	employeeRepo employee.EmployeeRepository,
) regularization.RegularizationService {
	return &RegularizationServiceImpl{
		regularizationRepo: regularizationRepo,
		employeeRepo:       employeeRepo,
	}
}

func (s *RegularizationServiceImpl) SaveRegularization(ctx context.Context, req regularization.SaveRegularizationRequest) (regularization.Regularization, error) {
	if err := req.Validate(); err != nil {
		return regularization.Regularization{}, err
	}
	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err != nil {
		return regularization.Regularization{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	date, err := paycycle.ParseLocalDate(req.Date)
	if err != nil {
		return regularization.Regularization{}, err
	}

	reg := regularization.Regularization{
		EmployeeCode:      req.EmployeeCode,
		Date:              date,
		OriginalStatus:    req.OriginalStatus,
		RegularizedStatus: req.RegularizedStatus,
		Reason:            req.Reason,
		ApprovedBy:        req.ApprovedBy,
		Status:            regularization.StatusApproved,
	}
	if err := s.regularizationRepo.Upsert(ctx, reg); err != nil {
		return regularization.Regularization{}, fmt.Errorf("failed to save regularization: %w", err)
	}
	return reg, nil
}

func (s *RegularizationServiceImpl) ListForCycle(ctx context.Context, employeeCode, month string) ([]regularization.Regularization, error) {
	cycleStart, cycleEnd, err := paycycle.CycleRange(month)
	if err != nil {
		return nil, err
	}
	return s.regularizationRepo.ListApprovedBetween(ctx, employeeCode, cycleStart, cycleEnd)
}

func (s *RegularizationServiceImpl) RemoveRegularization(ctx context.Context, employeeCode string, date paycycle.LocalDate) error {
	return s.regularizationRepo.Delete(ctx, employeeCode, date)
}
