package leave

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Leave kinds carried on a day record.
const (
	KindPaid   = "paid-leave"
	KindCasual = "casual-leave"
)

// Default day values applied when parsing the legacy comma-separated format.
const (
	DefaultPaidValue   = 1.0
	DefaultCasualValue = 0.5
)

// LeaveDate is one approved leave day. Value is 0.5 or 1.0, nothing else.
type LeaveDate struct {
	Date  paycycle.LocalDate `json:"date"`
	Value float64            `json:"value"`
}

// MonthlyUsage is the per-cycle leave record, upserted as a single unit.
type MonthlyUsage struct {
	EmployeeCode     string
	Month            string
	PaidLeaveDates   []LeaveDate
	CasualLeaveDates []LeaveDate
	UpdatedBy        string
	UpdatedAt        time.Time
}

// TotalDays sums paid and casual day values.
func (u MonthlyUsage) TotalDays() float64 {
	var total float64
	for _, d := range u.PaidLeaveDates {
		total += d.Value
	}
	for _, d := range u.CasualLeaveDates {
		total += d.Value
	}
	return total
}

// Entitlement is the annual leave allowance, one row per (employee, year).
type Entitlement struct {
	EmployeeCode     string
	Year             int
	AllowedLeaves    float64
	UsedPaidLeaves   float64
	UsedCasualLeaves float64
}

// ParseLeaveDates decodes a stored leave-date column. Current rows hold a
// JSON array of {date, value}; legacy rows hold comma-separated dates that
// take defaultValue per day.
func ParseLeaveDates(raw string, defaultValue float64) ([]LeaveDate, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "null" {
		return nil, nil
	}

	if strings.HasPrefix(s, "[") {
		var dates []LeaveDate
		if err := json.Unmarshal([]byte(s), &dates); err != nil {
			return nil, fmt.Errorf("invalid leave dates JSON: %w", err)
		}
		return dates, nil
	}

	var dates []LeaveDate
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := paycycle.ParseLocalDate(part)
		if err != nil {
			return nil, fmt.Errorf("invalid legacy leave date %q: %w", part, err)
		}
		dates = append(dates, LeaveDate{Date: d, Value: defaultValue})
	}
	return dates, nil
}
