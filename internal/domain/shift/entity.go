package shift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

// Shift is the stored reference row. Times are "HH:MM" strings as the admin
// screens write them.
type Shift struct {
	Name                 string
	StartTime            string
	EndTime              string
	WorkHours            float64
	LateThresholdMinutes int
	IsSplitShift         bool
	Slot1Start           *string
	Slot1End             *string
	Slot2Start           *string
	Slot2End             *string
}

// Assignment overrides an employee's default shift for a date range,
// both endpoints inclusive. Overlapping assignments resolve by highest id.
type Assignment struct {
	ID           int64
	EmployeeCode string
	ShiftName    string
	FromDate     paycycle.LocalDate
	ToDate       paycycle.LocalDate
}

// SlotTiming is one half of a split shift.
type SlotTiming struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// Timing is the structured shape the classifier consumes.
type Timing struct {
	ShiftName            string
	StartHour            int
	StartMinute          int
	EndHour              int
	EndMinute            int
	WorkHours            float64
	LateThresholdMinutes int
	IsSplitShift         bool
	Slot1                *SlotTiming
	Slot2                *SlotTiming
}

// DefaultTiming is applied when neither an assignment nor a default shift
// resolves: 10:00-19:00, 9 expected hours, 12-minute grace.
func DefaultTiming() Timing {
	return Timing{
		ShiftName:            "DEFAULT",
		StartHour:            10,
		StartMinute:          0,
		EndHour:              19,
		EndMinute:            0,
		WorkHours:            9,
		LateThresholdMinutes: 12,
	}
}

func parseClock(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h, m, nil
}

func parseSlot(start, end *string) (*SlotTiming, error) {
	if start == nil || end == nil {
		return nil, nil
	}
	sh, sm, err := parseClock(*start)
	if err != nil {
		return nil, err
	}
	eh, em, err := parseClock(*end)
	if err != nil {
		return nil, err
	}
	return &SlotTiming{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em}, nil
}

// ParseShift converts a stored row into the structured timing shape.
func ParseShift(s Shift) (Timing, error) {
	startH, startM, err := parseClock(s.StartTime)
	if err != nil {
		return Timing{}, fmt.Errorf("shift %s: %w", s.Name, err)
	}
	endH, endM, err := parseClock(s.EndTime)
	if err != nil {
		return Timing{}, fmt.Errorf("shift %s: %w", s.Name, err)
	}

	t := Timing{
		ShiftName:            s.Name,
		StartHour:            startH,
		StartMinute:          startM,
		EndHour:              endH,
		EndMinute:            endM,
		WorkHours:            s.WorkHours,
		LateThresholdMinutes: s.LateThresholdMinutes,
		IsSplitShift:         s.IsSplitShift,
	}

	if s.IsSplitShift {
		if t.Slot1, err = parseSlot(s.Slot1Start, s.Slot1End); err != nil {
			return Timing{}, fmt.Errorf("shift %s slot1: %w", s.Name, err)
		}
		if t.Slot2, err = parseSlot(s.Slot2Start, s.Slot2End); err != nil {
			return Timing{}, fmt.Errorf("shift %s slot2: %w", s.Name, err)
		}
		if t.Slot1 == nil || t.Slot2 == nil {
			return Timing{}, fmt.Errorf("shift %s marked split but slots are incomplete", s.Name)
		}
	}

	return t, nil
}

// Resolve answers "what shift applies on this date": the date-ranged
// assignment with the highest id, else the employee default, else the
// system default. It never fails; unknown shift names fall through.
func Resolve(date paycycle.LocalDate, assignments []Assignment, timings map[string]Timing, defaultShift string) Timing {
	var best *Assignment
	for i := range assignments {
		a := &assignments[i]
		if date.Before(a.FromDate) || date.After(a.ToDate) {
			continue
		}
		if best == nil || a.ID > best.ID {
			best = a
		}
	}
	if best != nil {
		if t, ok := timings[best.ShiftName]; ok {
			return t
		}
	}
	if defaultShift != "" {
		if t, ok := timings[defaultShift]; ok {
			return t
		}
	}
	return DefaultTiming()
}
