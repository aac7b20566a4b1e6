package attendance

import (
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

// MonthlyHoursRequest asks the engine for one (employee, cycle) breakdown.
// Nil leave slices mean "fetch from the monthly usage table"; empty slices
// mean "explicitly no leaves".
type MonthlyHoursRequest struct {
	EmployeeCode string `json:"employee_code"`
	Month        string `json:"month"`

	JoinDate *string `json:"join_date,omitempty"`
	ExitDate *string `json:"exit_date,omitempty"`

	PaidLeaves   []leave.LeaveDate `json:"paid_leaves,omitempty"`
	CasualLeaves []leave.LeaveDate `json:"casual_leaves,omitempty"`
}

func (r MonthlyHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Invalid month, expected YYYY-MM"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "Invalid date, expected YYYY-MM-DD"})
		}
	}
	if r.ExitDate != nil {
		if _, ok := validator.IsValidDate(*r.ExitDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "Invalid date, expected YYYY-MM-DD"})
		}
	}
	for _, d := range append(append([]leave.LeaveDate{}, r.PaidLeaves...), r.CasualLeaves...) {
		if !validator.IsValidLeaveValue(d.Value) {
			errs = append(errs, validator.ValidationError{Field: "leaves", Message: "Leave value must be 0.5 or 1.0"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
