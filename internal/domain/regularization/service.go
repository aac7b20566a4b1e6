package regularization

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type RegularizationService interface {
	// SaveRegularization upserts an APPROVED row for (employee, date).
	SaveRegularization(ctx context.Context, req SaveRegularizationRequest) (Regularization, error)

	ListForCycle(ctx context.Context, employeeCode, month string) ([]Regularization, error)

	RemoveRegularization(ctx context.Context, employeeCode string, date paycycle.LocalDate) error
}
