package regularization

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type RegularizationRepository interface {
	// ListApprovedBetween returns APPROVED rows with date in [from, to].
	ListApprovedBetween(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]Regularization, error)

	// Upsert replaces the (employee, date) row.
	Upsert(ctx context.Context, reg Regularization) error

	Delete(ctx context.Context, employeeCode string, date paycycle.LocalDate) error
}
