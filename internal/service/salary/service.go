package salary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/config"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	cfg config.PayrollConfig

	attendanceService attendance.AttendanceService
	employeeRepo      employee.EmployeeRepository
	salaryRepo        salary.SalaryRepository
	adjustmentRepo    salary.AdjustmentRepository
	holdRepo          salary.HoldRepository
	overtimeRepo      salary.OvertimeToggleRepository
	leaveRepo         leave.LeaveRepository
	punchRepo         punch.LogRepository
	shiftRepo         shift.ShiftRepository
	assignmentRepo    shift.AssignmentRepository
}

func NewSalaryService(
	cfg config.PayrollConfig,
	attendanceService attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	adjustmentRepo salary.AdjustmentRepository,
	holdRepo salary.HoldRepository,
	overtimeRepo salary.OvertimeToggleRepository,
	leaveRepo leave.LeaveRepository,
	punchRepo punch.LogRepository,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		cfg:               cfg,
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
		salaryRepo:        salaryRepo,
		adjustmentRepo:    adjustmentRepo,
		holdRepo:          holdRepo,
		overtimeRepo:      overtimeRepo,
		leaveRepo:         leaveRepo,
		punchRepo:         punchRepo,
		shiftRepo:         shiftRepo,
		assignmentRepo:    assignmentRepo,
	}
}

func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, req salary.CalculateSalaryRequest) (salary.Calculation, error) {
	if err := req.Validate(); err != nil {
		return salary.Calculation{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to get employee %s: %w", req.EmployeeCode, err)
	}

	baseSalary, err := s.resolveBaseSalary(emp)
	if err != nil {
		return salary.Calculation{}, err
	}

	att, err := s.attendanceService.CalculateMonthlyHours(ctx, attendance.MonthlyHoursRequest{
		EmployeeCode: req.EmployeeCode,
		Month:        req.Month,
		JoinDate:     req.JoinDate,
		ExitDate:     req.ExitDate,
		PaidLeaves:   req.PaidLeaves,
		CasualLeaves: req.CasualLeaves,
	})
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to compute monthly attendance: %w", err)
	}

	overtimeEnabled, err := s.overtimeRepo.IsEnabled(ctx, req.EmployeeCode, req.Month)
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to read overtime toggle: %w", err)
	}

	adjustments, err := s.adjustmentRepo.ListForMonth(ctx, req.EmployeeCode, req.Month)
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to list adjustments: %w", err)
	}

	entitlement, totalUsed, err := s.entitlementForMonth(ctx, req.EmployeeCode, req.Month)
	if err != nil {
		return salary.Calculation{}, err
	}

	hold, err := s.holdRepo.GetActive(ctx, req.EmployeeCode, req.Month)
	if err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to check salary hold: %w", err)
	}

	joinDate := emp.JoiningDate
	if req.JoinDate != nil {
		if joinDate, err = paycycle.ParseLocalDate(*req.JoinDate); err != nil {
			return salary.Calculation{}, err
		}
	}

	breakdown, err := computeBreakdown(calculationInput{
		att:             att,
		baseSalary:      baseSalary,
		joinDate:        joinDate,
		department:      deref(emp.Department),
		designation:     deref(emp.Designation),
		overtimeEnabled: overtimeEnabled,
		adjustments:     adjustments,
		entitlement:     entitlement,
		totalLeavesUsed: totalUsed,
	})
	if err != nil {
		return salary.Calculation{}, err
	}

	if hold != nil {
		breakdown.IsHeld = true
		breakdown.HoldReason = hold.Reason
	}

	record, err := snapshotRecord(req, breakdown, hold)
	if err != nil {
		return salary.Calculation{}, err
	}
	if err := s.salaryRepo.Upsert(ctx, record); err != nil {
		return salary.Calculation{}, fmt.Errorf("failed to persist salary snapshot: %w", err)
	}

	// The upsert preserves an existing FINALIZED latch; read the row back
	// so the caller sees the status that actually stuck.
	status := salary.StatusDraft
	if stored, err := s.salaryRepo.Get(ctx, req.EmployeeCode, req.Month, false); err != nil {
		slog.Warn("failed to read back salary snapshot status",
			"employee_code", req.EmployeeCode, "month", req.Month, "error", err)
	} else {
		status = stored.Status
	}

	return salary.Calculation{
		EmployeeCode: req.EmployeeCode,
		EmployeeName: emp.Name,
		Month:        req.Month,
		Breakdown:    breakdown,
		Status:       status,
	}, nil
}

func (s *SalaryServiceImpl) GetSalary(ctx context.Context, employeeCode, month string, finalizedOnly bool) (salary.MonthlySalary, error) {
	return s.salaryRepo.Get(ctx, employeeCode, month, finalizedOnly)
}

func (s *SalaryServiceImpl) GetLatestSalary(ctx context.Context, employeeCode string, finalizedOnly bool) (salary.MonthlySalary, error) {
	return s.salaryRepo.GetLatest(ctx, employeeCode, finalizedOnly)
}

func (s *SalaryServiceImpl) FinalizeSalary(ctx context.Context, employeeCode, month, actor string) error {
	return s.salaryRepo.Finalize(ctx, employeeCode, month, actor)
}

func (s *SalaryServiceImpl) FinalizeAllSalaries(ctx context.Context, month, actor string) (int64, error) {
	if !paycycle.IsValidMonth(month) {
		return 0, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return s.salaryRepo.FinalizeAll(ctx, month, actor)
}

// resolveBaseSalary falls back to the configured default when the employee
// record carries none. A zero default means the fallback is disabled.
func (s *SalaryServiceImpl) resolveBaseSalary(emp employee.Employee) (decimal.Decimal, error) {
	if emp.BasicSalary != nil && emp.BasicSalary.IsPositive() {
		return *emp.BasicSalary, nil
	}
	if s.cfg.DefaultBaseSalary.IsPositive() {
		slog.Warn("employee has no base salary, using configured default",
			"employee_code", emp.EmployeeCode,
			"default_base_salary", s.cfg.DefaultBaseSalary.String())
		return s.cfg.DefaultBaseSalary, nil
	}
	return decimal.Zero, fmt.Errorf("employee %s: %w", emp.EmployeeCode, employee.ErrNoBasicSalary)
}

// entitlementForMonth loads the annual allowance for the cycle's year.
// No entitlement row means the loss-of-pay carry-over simply does not apply.
func (s *SalaryServiceImpl) entitlementForMonth(ctx context.Context, employeeCode, month string) (*leave.Entitlement, float64, error) {
	year, _, err := paycycle.ParseMonth(month)
	if err != nil {
		return nil, 0, err
	}
	ent, err := s.leaveRepo.GetEntitlement(ctx, employeeCode, year)
	if err != nil {
		if errors.Is(err, leave.ErrEntitlementNotFound) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to get leave entitlement: %w", err)
	}
	return &ent, ent.UsedPaidLeaves + ent.UsedCasualLeaves, nil
}

// snapshotRecord flattens the breakdown into the snapshot row the portal
// and payslip renderer read.
func snapshotRecord(req salary.CalculateSalaryRequest, b salary.Breakdown, hold *salary.Hold) (salary.MonthlySalary, error) {
	breakdownJSON, err := json.Marshal(b)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to marshal salary breakdown: %w", err)
	}

	record := salary.MonthlySalary{
		EmployeeCode:     req.EmployeeCode,
		Month:            req.Month,
		GrossSalary:      b.GrossSalary,
		NetSalary:        b.NetSalary,
		BaseSalary:       b.BaseSalary,
		PerDayRate:       b.PerDayRate,
		PaidDays:         b.PayableDays,
		AbsentDays:       b.Attendance.AbsentDays,
		LeaveDays:        b.ApprovedLeaveCredit,
		TotalDeductions:  b.TDSDeduction.Add(b.ProfessionalTax).Add(b.AdjustmentDeductions),
		TotalAdditions:   b.IncentiveAmount.Add(b.OtherAdditions),
		TotalWorkedHours: b.Attendance.TotalWorkedHours,
		OvertimeHours:    b.OvertimeHours,
		OvertimeAmount:   b.OvertimeAmount,
		TDSDeduction:     b.TDSDeduction,
		ProfessionalTax:  b.ProfessionalTax,
		IncentiveAmount:  b.IncentiveAmount,
		BreakdownJSON:    breakdownJSON,
		Status:           salary.StatusDraft,
		CalculatedAt:     time.Now().UTC(),
		CalculatedBy:     req.CalculatedBy,
	}
	if hold != nil {
		record.IsHeld = true
		reason := hold.Reason
		record.HoldReason = &reason
	}
	return record, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
