package holiday

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type HolidayRepository interface {
	// ListActiveBetween returns active holidays with date in [from, to].
	ListActiveBetween(ctx context.Context, from, to paycycle.LocalDate) ([]Holiday, error)

	Upsert(ctx context.Context, h Holiday) error

	// Deactivate soft-deletes the holiday.
	Deactivate(ctx context.Context, date paycycle.LocalDate) error
}
