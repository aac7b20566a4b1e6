package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftExists        = errors.New("shift already exists")
	ErrShiftInUse         = errors.New("shift is referenced and cannot be deleted")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)
