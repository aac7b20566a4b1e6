package punch

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Log is one raw biometric punch. Rows are append-only and partitioned by
// calendar month on the device-sync side; the engine never writes them.
type Log struct {
	EmployeeCode string
	LogTime      paycycle.LocalTime
	Direction    *string // "in"/"out" when the device reports it
}
