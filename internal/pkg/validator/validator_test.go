package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("a.b-c_1"))
	assert.False(t, IsValidEmployeeCode(""))
	assert.False(t, IsValidEmployeeCode("has space"))
	assert.False(t, IsValidEmployeeCode("way-too-long-code-over-thirty-two-characters"))
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.True(t, IsValidMonth("2025-12"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-1"))
	assert.False(t, IsValidMonth("202501"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	assert.Equal(t, "2025-02-28", d.String())

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
}

func TestIsValidLeaveValue(t *testing.T) {
	assert.True(t, IsValidLeaveValue(0.5))
	assert.True(t, IsValidLeaveValue(1.0))
	assert.False(t, IsValidLeaveValue(0))
	assert.False(t, IsValidLeaveValue(0.75))
	assert.False(t, IsValidLeaveValue(2))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("+91 98765 43210"))
	assert.True(t, IsValidPhoneNumber("919876543210"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("98765abcde"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "Invalid month"},
		{Field: "employee_code", Message: "Invalid employee code"},
	}
	assert.Contains(t, errs.Error(), "month: Invalid month")
	assert.Equal(t, "Invalid month", errs.ToMap()["month"])
}
