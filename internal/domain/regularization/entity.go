package regularization

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Regularized statuses an admin may grant. A regularization only ever
// upgrades a day (absent to half or full, half to full).
const (
	StatusHalfDay = "half-day"
	StatusFullDay = "full-day"
)

const StatusApproved = "APPROVED"

// Regularization upgrades one day's classification. One row per
// (employee, date); only APPROVED rows affect the calculation.
type Regularization struct {
	EmployeeCode      string
	Date              paycycle.LocalDate
	OriginalStatus    string
	RegularizedStatus string
	Reason            string
	ApprovedBy        string
	Status            string
}
