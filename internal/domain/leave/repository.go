package leave

import "context"

type LeaveRepository interface {
	// GetMonthlyUsage returns ErrUsageNotFound when no row exists.
	GetMonthlyUsage(ctx context.Context, employeeCode, month string) (MonthlyUsage, error)

	// UpsertMonthlyUsage replaces the (employee, month) row as one unit and
	// refreshes the used-day counters stored alongside the JSON columns.
	UpsertMonthlyUsage(ctx context.Context, usage MonthlyUsage) error

	// ListUsageForYear returns every monthly row of the calendar year.
	ListUsageForYear(ctx context.Context, employeeCode string, year int) ([]MonthlyUsage, error)

	// GetEntitlement returns ErrEntitlementNotFound when the employee has
	// no allowance row for the year.
	GetEntitlement(ctx context.Context, employeeCode string, year int) (Entitlement, error)

	// UpdateEntitlementUsage rewrites the used-leave counters for the year.
	UpdateEntitlementUsage(ctx context.Context, employeeCode string, year int, usedPaid, usedCasual float64) error
}
