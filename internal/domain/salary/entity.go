package salary

import (
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// AdjustmentType splits manual adjustments into money in and money out.
type AdjustmentType string

const (
	AdjustmentDeduction AdjustmentType = "DEDUCTION"
	AdjustmentAddition  AdjustmentType = "ADDITION"
)

// CategoryIncentive is the reserved category whose additions route into
// gross salary (and therefore into the PT/TDS base) instead of net.
const CategoryIncentive = "INCENTIVE"

// Adjustment is a free-form per-month addition or deduction.
type Adjustment struct {
	ID           int64           `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Month        string          `json:"month"`
	Type         AdjustmentType  `json:"type"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
}

// HoldType distinguishes admin holds from system-detected ones.
type HoldType string

const (
	HoldManual HoldType = "MANUAL"
	HoldAuto   HoldType = "AUTO"
)

// Hold parks an employee's payout for a month. At most one unreleased hold
// may exist per (employee, month); the database enforces it.
type Hold struct {
	ID           int64
	EmployeeCode string
	Month        string
	HoldType     HoldType
	Reason       string
	IsReleased   bool
	CreatedAt    time.Time
	ReleasedAt   *time.Time
}

// OvertimeToggle enables overtime pay for one (employee, month).
// Absent rows mean disabled: hours are computed but not paid.
type OvertimeToggle struct {
	EmployeeCode      string
	Month             string
	IsOvertimeEnabled bool
}

// Status is the snapshot lifecycle. FINALIZED is a one-way latch.
type Status int

const (
	StatusDraft     Status = 0
	StatusFinalized Status = 1
)

// MonthlySalary is the persisted snapshot row. BreakdownJSON is
// self-contained: an employee portal or payslip renderer needs nothing else.
type MonthlySalary struct {
	EmployeeCode     string
	Month            string
	GrossSalary      decimal.Decimal
	NetSalary        decimal.Decimal
	BaseSalary       decimal.Decimal
	PerDayRate       decimal.Decimal
	PaidDays         float64
	AbsentDays       float64
	LeaveDays        float64
	TotalDeductions  decimal.Decimal
	TotalAdditions   decimal.Decimal
	TotalWorkedHours float64
	OvertimeHours    int
	OvertimeAmount   decimal.Decimal
	TDSDeduction     decimal.Decimal
	ProfessionalTax  decimal.Decimal
	IncentiveAmount  decimal.Decimal
	IsHeld           bool
	HoldReason       *string
	BreakdownJSON    []byte
	Status           Status
	CalculatedAt     time.Time
	CalculatedBy     string
}

// Breakdown is the document serialized into MonthlySalary.BreakdownJSON.
// Every monetary component appears even when zero so consumers can render
// deterministically without recomputation.
type Breakdown struct {
	Attendance attendance.MonthlyAttendance `json:"attendance"`

	BaseSalary    decimal.Decimal `json:"base_salary"`
	FullCycleDays int             `json:"full_cycle_days"`
	PerDayRate    decimal.Decimal `json:"per_day_rate"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`

	PayableSundays      float64 `json:"payable_sundays"`
	ApprovedLeaveCredit float64 `json:"approved_leave_credit"`
	LOPDays             float64 `json:"lop_days"`
	PayableDays         float64 `json:"payable_days"`

	AttendancePay decimal.Decimal `json:"attendance_pay"`

	OvertimeEnabled bool            `json:"overtime_enabled"`
	OvertimeHours   int             `json:"overtime_hours"`
	OvertimeAmount  decimal.Decimal `json:"overtime_amount"`

	Adjustments          []Adjustment    `json:"adjustments"`
	IncentiveAmount      decimal.Decimal `json:"incentive_amount"`
	OtherAdditions       decimal.Decimal `json:"other_additions"`
	AdjustmentDeductions decimal.Decimal `json:"adjustment_deductions"`

	GrossSalary     decimal.Decimal `json:"gross_salary"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDSDeduction    decimal.Decimal `json:"tds_deduction"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	IsHeld     bool   `json:"is_held"`
	HoldReason string `json:"hold_reason,omitempty"`
}

// Calculation is the full result returned to callers and persisted as the
// snapshot.
type Calculation struct {
	EmployeeCode string    `json:"employee_code"`
	EmployeeName string    `json:"employee_name"`
	Month        string    `json:"month"`
	Breakdown    Breakdown `json:"breakdown"`
	Status       Status    `json:"status"`
}

// BatchError records one non-skip failure of a batch run.
type BatchError struct {
	EmployeeCode string `json:"employee_code"`
	Error        string `json:"error"`
}

// BatchResult aggregates one batch run. Held employees are excluded from
// both Data and Errors.
type BatchResult struct {
	Month          string          `json:"month"`
	Processed      int             `json:"processed"`
	Failed         int             `json:"failed"`
	Skipped        []string        `json:"skipped"`
	Data           []Calculation   `json:"data"`
	Errors         []BatchError    `json:"errors"`
	TotalNetSalary decimal.Decimal `json:"total_net_salary"`
}
