package attendance

import (
	"github.com/sevaksoft/payroll-backend-go/internal/domain/leave"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/regularization"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// DayStatus classifies one workday.
type DayStatus string

const (
	StatusFullDay     DayStatus = "full-day"
	StatusHalfDay     DayStatus = "half-day"
	StatusAbsent      DayStatus = "absent"
	StatusWeekoff     DayStatus = "weekoff"
	StatusNotActive   DayStatus = "not-active"
	StatusPaidLeave   DayStatus = "paid-leave"
	StatusCasualLeave DayStatus = "casual-leave"
)

// WeekoffType marks whether a Sunday is paid.
type WeekoffType string

const (
	WeekoffPaid   WeekoffType = "paid"
	WeekoffUnpaid WeekoffType = "unpaid"
)

// DayHours is the raw classifier output for one workday.
type DayHours struct {
	FirstEntry        *paycycle.LocalTime `json:"first_entry,omitempty"`
	LastExit          *paycycle.LocalTime `json:"last_exit,omitempty"`
	TotalHours        float64             `json:"total_hours"`
	IsLate            bool                `json:"is_late"`
	IsLateBy30Minutes bool                `json:"is_late_by_30_minutes"`
	MinutesLate       *int                `json:"minutes_late,omitempty"`
	IsEarlyExit       bool                `json:"is_early_exit"`
	Status            DayStatus           `json:"status"`
	LogCount          int                 `json:"log_count"`
}

// DayRecord is one day of the monthly breakdown after all passes.
type DayRecord struct {
	Date          paycycle.LocalDate `json:"date"`
	ShiftName     string             `json:"shift_name"`
	ExpectedHours float64            `json:"expected_hours"`
	DayHours

	IsSunday    bool        `json:"is_sunday"`
	WeekoffType WeekoffType `json:"weekoff_type,omitempty"`

	IsHoliday   bool   `json:"is_holiday,omitempty"`
	HolidayName string `json:"holiday_name,omitempty"`

	IsRegularized  bool      `json:"is_regularized,omitempty"`
	OriginalStatus DayStatus `json:"original_status,omitempty"`

	LeaveKind  string  `json:"leave_kind,omitempty"`
	LeaveValue float64 `json:"leave_value,omitempty"`
}

// MonthlyAttendance is the engine output for one (employee, cycle).
type MonthlyAttendance struct {
	EmployeeCode string `json:"employee_code"`
	Month        string `json:"month"`

	CycleStart     paycycle.LocalDate `json:"cycle_start"`
	CycleEnd       paycycle.LocalDate `json:"cycle_end"`
	EffectiveStart paycycle.LocalDate `json:"effective_start"`
	EffectiveEnd   paycycle.LocalDate `json:"effective_end"`

	Days []DayRecord `json:"days"`

	FullDays            int     `json:"full_days"`
	HalfDays            int     `json:"half_days"`
	AbsentDays          float64 `json:"absent_days"`
	LateDays            int     `json:"late_days"`
	LateBy30MinutesDays int     `json:"late_by_30_minutes_days"`
	EarlyExits          int     `json:"early_exits"`
	TotalWorkedHours    float64 `json:"total_worked_hours"`

	TotalDaysInEffectiveCycle int `json:"total_days_in_effective_cycle"`

	// OriginalLOPForSundayRule is frozen before leave application; the
	// 5-day Sunday rule reads only this value.
	OriginalLOPForSundayRule float64 `json:"original_lop_for_sunday_rule"`

	// Inputs echoed into the snapshot so consumers never recompute.
	PaidLeaveDates   []leave.LeaveDate                 `json:"paid_leave_dates"`
	CasualLeaveDates []leave.LeaveDate                 `json:"casual_leave_dates"`
	Regularizations  []regularization.Regularization   `json:"regularizations"`
}

// ShiftWorkHours returns the expected daily hours of the dominant shift,
// used for the hourly overtime rate. Falls back to the first effective day.
func (m MonthlyAttendance) ShiftWorkHours() float64 {
	counts := make(map[float64]int)
	for _, d := range m.Days {
		if d.Status == StatusNotActive {
			continue
		}
		counts[d.ExpectedHours]++
	}
	var best float64
	var bestCount int
	for h, c := range counts {
		if c > bestCount || (c == bestCount && h > best) {
			best, bestCount = h, c
		}
	}
	if best == 0 {
		return 9
	}
	return best
}
