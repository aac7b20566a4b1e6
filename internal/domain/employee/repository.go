package employee

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type EmployeeRepository interface {
	// GetByCode returns the employee joined with its payroll details.
	GetByCode(ctx context.Context, employeeCode string) (Employee, error)

	// GetByPhone looks up an employee by portal phone number.
	GetByPhone(ctx context.Context, phoneNumber string) (Employee, error)

	// ListActiveInCycle returns employees whose employment window overlaps
	// [cycleStart, cycleEnd].
	ListActiveInCycle(ctx context.Context, cycleStart, cycleEnd paycycle.LocalDate) ([]Employee, error)
}
