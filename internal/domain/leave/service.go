package leave

import "context"

type LeaveService interface {
	// SaveMonthlyLeaves replaces the (employee, month) usage as one unit
	// and refreshes the annual entitlement counters.
	SaveMonthlyLeaves(ctx context.Context, req SaveLeaveRequest) (MonthlyUsage, error)

	GetMonthlyUsage(ctx context.Context, employeeCode, month string) (MonthlyUsage, error)

	GetEntitlementSummary(ctx context.Context, employeeCode string, year int) (EntitlementResponse, error)
}
