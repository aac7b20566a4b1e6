package paycycle

import (
	"fmt"
	"regexp"
	"time"
)

// A payroll cycle labelled "YYYY-MM" covers the 26th of the previous
// calendar month through the 25th of the labelled month, both inclusive.

const (
	cycleStartDay = 26
	cycleEndDay   = 25
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether s is a well-formed "YYYY-MM" cycle label.
func IsValidMonth(s string) bool {
	return monthRegex.MatchString(s)
}

// ParseMonth splits a cycle label into year and month.
func ParseMonth(month string) (int, time.Month, error) {
	if !IsValidMonth(month) {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t.Year(), t.Month(), nil
}

// MonthLabel formats a year and month as a cycle label.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// CycleRange returns the inclusive bounds of the cycle.
func CycleRange(month string) (LocalDate, LocalDate, error) {
	year, m, err := ParseMonth(month)
	if err != nil {
		return LocalDate{}, LocalDate{}, err
	}
	end := NewLocalDate(year, m, cycleEndDay)
	// time.Date normalizes month 0 to December of the previous year.
	start := LocalDate{t: time.Date(year, m-1, cycleStartDay, 0, 0, 0, 0, time.UTC)}
	return start, end, nil
}

// DaysInCycle returns the count of calendar dates in the cycle.
func DaysInCycle(month string) (int, error) {
	start, end, err := CycleRange(month)
	if err != nil {
		return 0, err
	}
	return start.DaysUntil(end) + 1, nil
}

// CycleDays returns every calendar date in the cycle, in order.
func CycleDays(month string) ([]LocalDate, error) {
	start, end, err := CycleRange(month)
	if err != nil {
		return nil, err
	}
	days := make([]LocalDate, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}

// CycleForDate returns the label of the cycle containing the date.
// Dates on or after the 26th belong to the next calendar month's cycle.
func CycleForDate(d LocalDate) string {
	year, month := d.Year(), d.Month()
	if d.Day() >= cycleStartDay {
		next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
		return MonthLabel(next.Year(), next.Month())
	}
	return MonthLabel(year, month)
}

// NextMonth returns the cycle label one month after the given one.
func NextMonth(month string) (string, error) {
	year, m, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	t := time.Date(year, m+1, 1, 0, 0, 0, 0, time.UTC)
	return MonthLabel(t.Year(), t.Month()), nil
}

// PrevMonth returns the cycle label one month before the given one.
func PrevMonth(month string) (string, error) {
	year, m, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	t := time.Date(year, m-1, 1, 0, 0, 0, 0, time.UTC)
	return MonthLabel(t.Year(), t.Month()), nil
}

// WeekBounds returns the Monday and Sunday of the calendar week holding d.
func WeekBounds(d LocalDate) (LocalDate, LocalDate) {
	wd := d.Weekday() // Sunday = 0
	offset := wd - 1
	if wd == 0 {
		offset = 6
	}
	monday := d.AddDays(-offset)
	return monday, monday.AddDays(6)
}
