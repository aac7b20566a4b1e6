package salary

import "errors"

var (
	ErrSalaryNotFound     = errors.New("salary record not found")
	ErrSalaryNotFinalized = errors.New("salary has not been finalized")
	ErrActiveHoldExists   = errors.New("an unreleased hold already exists for this month")
	ErrHoldNotFound       = errors.New("salary hold not found")
	ErrAdjustmentNotFound = errors.New("salary adjustment not found")
)
