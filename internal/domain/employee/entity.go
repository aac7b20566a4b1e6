package employee

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/shopspring/decimal"
)

type Employee struct {
	EmployeeCode   string
	Name           string
	JoiningDate    paycycle.LocalDate
	ExitDate       *paycycle.LocalDate
	Department     *string
	Designation    *string
	BasicSalary    *decimal.Decimal
	ShiftName      *string
	PhoneNumber    *string
	BranchLocation *string
	BankAccNo      *string
	IFSCCode       *string
}

// IsActiveOn reports whether the employee was employed on the date.
func (e Employee) IsActiveOn(date paycycle.LocalDate) bool {
	if !e.JoiningDate.IsZero() && date.Before(e.JoiningDate) {
		return false
	}
	if e.ExitDate != nil && date.After(*e.ExitDate) {
		return false
	}
	return true
}
