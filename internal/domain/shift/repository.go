package shift

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type ShiftRepository interface {
	GetByName(ctx context.Context, name string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Create(ctx context.Context, s Shift) error
	Update(ctx context.Context, s Shift) error
	// Delete fails with ErrShiftInUse while employees or assignments
	// reference the shift.
	Delete(ctx context.Context, name string) error
}

type AssignmentRepository interface {
	// ListOverlapping returns assignments for the employee whose
	// [from_date, to_date] intersects [from, to].
	ListOverlapping(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]Assignment, error)
	ListForEmployee(ctx context.Context, employeeCode string) ([]Assignment, error)
	Create(ctx context.Context, a Assignment) (Assignment, error)
	Delete(ctx context.Context, id int64) error
}
