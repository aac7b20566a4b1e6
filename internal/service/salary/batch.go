package salary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// interChunkDelay keeps a full-company batch from monopolizing the
// connection pool between chunks.
const interChunkDelay = 100 * time.Millisecond

// BatchCalculate runs the whole cycle: every employee whose employment
// window overlaps it, in chunks processed with bounded parallelism.
// Held employees are skipped, per-employee failures are collected, and
// one failure never aborts the run.
func (s *SalaryServiceImpl) BatchCalculate(ctx context.Context, month string, chunkSize int) (salary.BatchResult, error) {
	cycleStart, cycleEnd, err := paycycle.CycleRange(month)
	if err != nil {
		return salary.BatchResult{}, err
	}
	if chunkSize <= 0 {
		chunkSize = s.cfg.BatchChunkSize
	}

	employees, err := s.employeeRepo.ListActiveInCycle(ctx, cycleStart, cycleEnd)
	if err != nil {
		return salary.BatchResult{}, fmt.Errorf("failed to list employees for cycle %s: %w", month, err)
	}

	result := salary.BatchResult{
		Month:          month,
		Skipped:        []string{},
		Data:           []salary.Calculation{},
		Errors:         []salary.BatchError{},
		TotalNetSalary: decimal.Zero,
	}
	var mu sync.Mutex

	for start := 0; start < len(employees); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := start + chunkSize
		if end > len(employees) {
			end = len(employees)
		}
		chunk := employees[start:end]

		g, chunkCtx := errgroup.WithContext(ctx)
		g.SetLimit(chunkSize)
		for _, emp := range chunk {
			emp := emp
			g.Go(func() error {
				outcome := s.processEmployee(chunkCtx, emp, month)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case outcome.skipped:
					result.Skipped = append(result.Skipped, emp.EmployeeCode)
				case outcome.err != nil:
					result.Failed++
					result.Errors = append(result.Errors, salary.BatchError{
						EmployeeCode: emp.EmployeeCode,
						Error:        outcome.err.Error(),
					})
				default:
					result.Processed++
					result.Data = append(result.Data, outcome.calc)
					result.TotalNetSalary = result.TotalNetSalary.Add(outcome.calc.Breakdown.NetSalary)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return result, err
		}

		if end < len(employees) {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(interChunkDelay):
			}
		}
	}

	slog.Info("batch salary calculation finished",
		"month", month,
		"processed", result.Processed,
		"failed", result.Failed,
		"skipped", len(result.Skipped))
	return result, nil
}

type employeeOutcome struct {
	calc    salary.Calculation
	skipped bool
	err     error
}

func (s *SalaryServiceImpl) processEmployee(ctx context.Context, emp employee.Employee, month string) employeeOutcome {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.EmployeeTimeout)
	defer cancel()

	hold, err := s.holdRepo.GetActive(ctx, emp.EmployeeCode, month)
	if err != nil {
		return employeeOutcome{err: fmt.Errorf("failed to check hold: %w", err)}
	}
	if hold != nil {
		slog.Info("skipping held employee",
			"employee_code", emp.EmployeeCode, "month", month, "hold_type", hold.HoldType)
		return employeeOutcome{skipped: true}
	}

	s.runAutoHoldCheck(ctx, emp, month)

	calc, err := s.CalculateSalary(ctx, salary.CalculateSalaryRequest{
		EmployeeCode: emp.EmployeeCode,
		Month:        month,
		CalculatedBy: "batch",
	})
	if err != nil {
		return employeeOutcome{err: err}
	}
	return employeeOutcome{calc: calc}
}
