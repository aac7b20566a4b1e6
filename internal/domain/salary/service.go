package salary

import "context"

// SalaryService is the public contract the HTTP layer adapts.
type SalaryService interface {
	// CalculateSalary computes and persists one (employee, month) snapshot.
	CalculateSalary(ctx context.Context, req CalculateSalaryRequest) (Calculation, error)

	// BatchCalculate runs the whole cycle in bounded-parallel chunks.
	BatchCalculate(ctx context.Context, month string, chunkSize int) (BatchResult, error)

	// GetSalary reads a stored snapshot without recomputation.
	GetSalary(ctx context.Context, employeeCode, month string, finalizedOnly bool) (MonthlySalary, error)

	// GetLatestSalary reads the most recent snapshot.
	GetLatestSalary(ctx context.Context, employeeCode string, finalizedOnly bool) (MonthlySalary, error)

	// FinalizeSalary latches one snapshot.
	FinalizeSalary(ctx context.Context, employeeCode, month, actor string) error

	// FinalizeAllSalaries latches every draft of the month.
	FinalizeAllSalaries(ctx context.Context, month, actor string) (int64, error)

	SaveAdjustment(ctx context.Context, req SaveAdjustmentRequest) (Adjustment, error)
	ListAdjustments(ctx context.Context, employeeCode, month string) ([]Adjustment, error)
	DeleteAdjustment(ctx context.Context, id int64) error

	// CreateHold fails with ErrActiveHoldExists when the month is already
	// held.
	CreateHold(ctx context.Context, req CreateHoldRequest) (Hold, error)
	ReleaseHold(ctx context.Context, id int64, actor string) error
	ListHolds(ctx context.Context, month string) ([]Hold, error)

	SetOvertimeToggle(ctx context.Context, req SetOvertimeToggleRequest) error
}
