package holiday

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type HolidayService interface {
	ListForCycle(ctx context.Context, month string) ([]Holiday, error)
	SaveHoliday(ctx context.Context, date paycycle.LocalDate, name string) (Holiday, error)
	RemoveHoliday(ctx context.Context, date paycycle.LocalDate) error
}
