package punch

import (
	"context"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// LogRepository reads device logs from the monthly partition tables.
type LogRepository interface {
	// GetForDates returns all punches for the employee whose log time falls
	// in [from 00:00, to+1 05:00), so early-morning punches that belong to
	// the last workday of the range are included. Missing partition tables
	// are treated as empty months.
	GetForDates(ctx context.Context, employeeCode string, from, to paycycle.LocalDate) ([]Log, error)
}
