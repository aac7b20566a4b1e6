package leave

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

type LeaveDateInput struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type SaveLeaveRequest struct {
	EmployeeCode     string           `json:"employee_code"`
	Month            string           `json:"month"`
	PaidLeaveDates   []LeaveDateInput `json:"paid_leave_dates"`
	CasualLeaveDates []LeaveDateInput `json:"casual_leave_dates"`
	UpdatedBy        string           `json:"updated_by"`
}

func (r SaveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Invalid month, expected YYYY-MM"})
	}

	checkDates := func(field string, dates []LeaveDateInput) {
		for _, d := range dates {
			if _, ok := validator.IsValidDate(d.Date); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "Invalid date " + d.Date})
			}
			if !validator.IsValidLeaveValue(d.Value) {
				errs = append(errs, validator.ValidationError{Field: field, Message: "Leave value must be 0.5 or 1.0"})
			}
		}
	}
	checkDates("paid_leave_dates", r.PaidLeaveDates)
	checkDates("casual_leave_dates", r.CasualLeaveDates)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntitlementResponse struct {
	EmployeeCode     string  `json:"employee_code"`
	Year             int     `json:"year"`
	AllowedLeaves    float64 `json:"allowed_leaves"`
	UsedPaidLeaves   float64 `json:"used_paid_leaves"`
	UsedCasualLeaves float64 `json:"used_casual_leaves"`
	RemainingLeaves  float64 `json:"remaining_leaves"`
}
