package attendance

import "context"

// AttendanceService turns raw punches into a monthly breakdown.
type AttendanceService interface {
	// CalculateMonthlyHours runs the multi-pass pipeline for one
	// (employee, cycle).
	CalculateMonthlyHours(ctx context.Context, req MonthlyHoursRequest) (MonthlyAttendance, error)
}
