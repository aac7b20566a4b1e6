package response

import (
	"errors"
	"net/http"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/auth"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/holiday"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/salary"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidOTP):
		Unauthorized(w, "Invalid or expired OTP")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoBasicSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Shift already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is still assigned to employees")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrUsageNotFound):
		NotFound(w, "Monthly leave usage not found")
	case errors.Is(err, leave.ErrEntitlementNotFound):
		NotFound(w, "Leave entitlement not found")
	case errors.Is(err, leave.ErrInvalidLeaveValue):
		BadRequest(w, "Leave value must be 0.5 or 1.0", nil)

	// Regularization and holiday errors
	case errors.Is(err, regularization.ErrRegularizationNotFound):
		NotFound(w, "Regularization not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryNotFinalized):
		NotFound(w, "Salary has not been finalized")
	case errors.Is(err, salary.ErrActiveHoldExists):
		Conflict(w, "An active hold already exists for this month")
	case errors.Is(err, salary.ErrHoldNotFound):
		NotFound(w, "Salary hold not found")
	case errors.Is(err, salary.ErrAdjustmentNotFound):
		NotFound(w, "Salary adjustment not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
