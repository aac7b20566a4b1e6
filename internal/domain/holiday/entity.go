package holiday

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Holiday is reference data; soft-deleted via IsActive.
type Holiday struct {
	Date     paycycle.LocalDate
	Name     string
	IsActive bool
}
