package shift

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

type SaveShiftRequest struct {
	Name                 string  `json:"name"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	WorkHours            float64 `json:"work_hours"`
	LateThresholdMinutes int     `json:"late_threshold_minutes"`
	IsSplitShift         bool    `json:"is_split_shift"`
	Slot1Start           *string `json:"slot1_start,omitempty"`
	Slot1End             *string `json:"slot1_end,omitempty"`
	Slot2Start           *string `json:"slot2_start,omitempty"`
	Slot2End             *string `json:"slot2_end,omitempty"`
}

func (r SaveShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Shift name is required"})
	}
	if r.WorkHours <= 0 || r.WorkHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "Work hours must be between 0 and 24"})
	}
	if r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold_minutes", Message: "Late threshold cannot be negative"})
	}
	if _, err := ParseShift(r.ToShift()); err != nil {
		errs = append(errs, validator.ValidationError{Field: "times", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r SaveShiftRequest) ToShift() Shift {
	return Shift{
		Name:                 r.Name,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		WorkHours:            r.WorkHours,
		LateThresholdMinutes: r.LateThresholdMinutes,
		IsSplitShift:         r.IsSplitShift,
		Slot1Start:           r.Slot1Start,
		Slot1End:             r.Slot1End,
		Slot2Start:           r.Slot2Start,
		Slot2End:             r.Slot2End,
	}
}

type AssignShiftRequest struct {
	EmployeeCode string `json:"employee_code"`
	ShiftName    string `json:"shift_name"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
}

func (r AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "Invalid employee code"})
	}
	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{Field: "shift_name", Message: "Shift name is required"})
	}
	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "Invalid date, expected YYYY-MM-DD"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must not be before from_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
