package shift

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type ShiftService interface {
	GetShift(ctx context.Context, name string) (Shift, error)
	ListShifts(ctx context.Context) ([]Shift, error)
	CreateShift(ctx context.Context, req SaveShiftRequest) (Shift, error)
	UpdateShift(ctx context.Context, req SaveShiftRequest) (Shift, error)
	DeleteShift(ctx context.Context, name string) error

	AssignShift(ctx context.Context, req AssignShiftRequest) (Assignment, error)
	ListAssignments(ctx context.Context, employeeCode string) ([]Assignment, error)
	RemoveAssignment(ctx context.Context, id int64) error

	// ResolveForDate answers which timing applies to the employee on the
	// date, the same way the attendance engine does.
	ResolveForDate(ctx context.Context, employeeCode string, date paycycle.LocalDate) (Timing, error)
}
