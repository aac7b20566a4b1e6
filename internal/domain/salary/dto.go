package salary

import (
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateSalaryRequest drives one (employee, month) calculation.
// Nil leave slices mean "fetch approved leaves"; empty means "none".
type CalculateSalaryRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Month        string  `json:"month"`
	JoinDate     *string `json:"join_date,omitempty"`
	ExitDate     *string `json:"exit_date,omitempty"`

	PaidLeaves   []leave.LeaveDate `json:"paid_leaves,omitempty"`
	CasualLeaves []leave.LeaveDate `json:"casual_leaves,omitempty"`

	CalculatedBy string `json:"calculated_by,omitempty"`
}

func (r CalculateSalaryRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveAdjustmentRequest struct {
	EmployeeCode string          `json:"employee_code"`
	Month        string          `json:"month"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
}

func (r SaveAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Invalid month, expected YYYY-MM"})
	}
	if !validator.IsInSlice(r.Type, []string{string(AdjustmentDeduction), string(AdjustmentAddition)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Type must be DEDUCTION or ADDITION"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "Category is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateHoldRequest struct {
	EmployeeCode string `json:"employee_code"`
	Month        string `json:"month"`
	Reason       string `json:"reason"`
}

func (r CreateHoldRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Invalid month, expected YYYY-MM"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetOvertimeToggleRequest struct {
	EmployeeCode      string `json:"employee_code"`
	Month             string `json:"month"`
	IsOvertimeEnabled bool   `json:"is_overtime_enabled"`
}

func (r SetOvertimeToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Invalid month, expected YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
