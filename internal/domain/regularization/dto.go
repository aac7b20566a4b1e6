package regularization

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

type SaveRegularizationRequest struct {
	EmployeeCode      string `json:"employee_code"`
	Date              string `json:"date"`
	OriginalStatus    string `json:"original_status"`
	RegularizedStatus string `json:"regularized_status"`
	Reason            string `json:"reason"`
	ApprovedBy        string `json:"approved_by"`
}

func (r SaveRegularizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.RegularizedStatus, []string{StatusHalfDay, StatusFullDay}) {
		errs = append(errs, validator.ValidationError{Field: "regularized_status", Message: "Must be half-day or full-day"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
