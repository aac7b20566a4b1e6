package validator

import (
	"regexp"
	"strings"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,32}$`)

// IsValidEmployeeCode checks the device-assigned employee code shape.
func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

// IsValidMonth checks a "YYYY-MM" payroll cycle label.
func IsValidMonth(month string) bool {
	return paycycle.IsValidMonth(month)
}

// IsValidDate checks a "YYYY-MM-DD" date string.
func IsValidDate(dateStr string) (paycycle.LocalDate, bool) {
	d, err := paycycle.ParseLocalDate(dateStr)
	return d, err == nil
}

// IsValidLeaveValue checks a leave day credit. Only half and full days exist.
func IsValidLeaveValue(v float64) bool {
	return v == 0.5 || v == 1.0
}

// Phone number validation: 10-digit local or 12-digit with country code 91.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.TrimPrefix(phone, "+")

	if strings.HasPrefix(phone, "91") && len(phone) == 12 {
		return IsNumeric(phone)
	}
	return len(phone) == 10 && IsNumeric(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
