package salary

import "context"

type SalaryRepository interface {
	// Upsert inserts or updates the (employee, month) snapshot. A row that
	// is already FINALIZED keeps its status; the rest of the row refreshes.
	Upsert(ctx context.Context, record MonthlySalary) error

	// Get returns ErrSalaryNotFound when missing, or when finalizedOnly is
	// set and the row is still a draft, ErrSalaryNotFinalized.
	Get(ctx context.Context, employeeCode, month string, finalizedOnly bool) (MonthlySalary, error)

	// GetLatest returns the most recent month for the employee.
	GetLatest(ctx context.Context, employeeCode string, finalizedOnly bool) (MonthlySalary, error)

	// Finalize latches DRAFT to FINALIZED. No-op when already finalized,
	// ErrSalaryNotFound when the row is missing.
	Finalize(ctx context.Context, employeeCode, month, actor string) error

	// FinalizeAll latches every draft of the month, returning the count.
	FinalizeAll(ctx context.Context, month, actor string) (int64, error)
}

type AdjustmentRepository interface {
	ListForMonth(ctx context.Context, employeeCode, month string) ([]Adjustment, error)

	// Upsert replaces the (employee, month, type, category) row.
	Upsert(ctx context.Context, adj Adjustment) (Adjustment, error)

	Delete(ctx context.Context, id int64) error
}

type HoldRepository interface {
	// GetActive returns the unreleased hold for (employee, month), or nil.
	GetActive(ctx context.Context, employeeCode, month string) (*Hold, error)

	// Create fails with ErrActiveHoldExists when an unreleased hold is
	// already present; the partial unique index makes concurrent creates
	// safe.
	Create(ctx context.Context, hold Hold) (Hold, error)

	Release(ctx context.Context, id int64, actor string) error

	ListForMonth(ctx context.Context, month string) ([]Hold, error)
}

type OvertimeToggleRepository interface {
	// IsEnabled defaults to false when no row exists.
	IsEnabled(ctx context.Context, employeeCode, month string) (bool, error)

	Set(ctx context.Context, toggle OvertimeToggle) error
}
