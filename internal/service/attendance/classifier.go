package attendance

import (
	"log/slog"
	"sort"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/attendance"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/punch"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/shift"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
)

const (
	// A single punch at or after this hour is a forgotten check-in, not a
	// forgotten check-out.
	checkOutOnlyHour = 14

	// Leaving this many minutes before shift end counts as an early exit.
	earlyExitSlackMinutes = 30

	// Share of expected hours that still counts as a full day.
	fullDayRatio = 0.97

	// A split-shift slot only judges lateness when the first punch lands
	// within this window of the slot start.
	slotLateWindowMinutes = 60

	// Slack added to a slot's nominal duration before capping its hours.
	slotCapSlackHours = 1.0
)

// GroupByWorkday buckets punches into workdays, applying the midnight
// crossover (hour in [0,5) belongs to the previous date). Within-day
// ordering is preserved.
func GroupByWorkday(punches []punch.Log) map[paycycle.LocalDate][]punch.Log {
	sorted := make([]punch.Log, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LogTime.Before(sorted[j].LogTime)
	})

	grouped := make(map[paycycle.LocalDate][]punch.Log)
	for _, p := range sorted {
		day := p.LogTime.Workday()
		grouped[day] = append(grouped[day], p)
	}
	return grouped
}

// ClassifyDay computes hours and status for one workday against its shift.
func ClassifyDay(date paycycle.LocalDate, dayPunches []punch.Log, timing shift.Timing) attendance.DayHours {
	if len(dayPunches) == 0 {
		return attendance.DayHours{Status: attendance.StatusAbsent}
	}

	times := make([]paycycle.LocalTime, len(dayPunches))
	for i, p := range dayPunches {
		times[i] = p.LogTime
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	if timing.IsSplitShift && timing.Slot1 != nil && timing.Slot2 != nil {
		return classifySplitDay(date, times, timing)
	}
	return classifyNormalDay(date, times, timing)
}

func classifyNormalDay(date paycycle.LocalDate, times []paycycle.LocalTime, timing shift.Timing) attendance.DayHours {
	var result attendance.DayHours
	result.LogCount = len(times)

	var firstEntry, lastExit *paycycle.LocalTime
	if len(times) == 1 {
		p := times[0]
		if p.Hour() >= checkOutOnlyHour {
			lastExit = &p
		} else {
			firstEntry = &p
		}
	} else {
		first, last := times[0], times[len(times)-1]
		firstEntry, lastExit = &first, &last
	}
	result.FirstEntry = firstEntry
	result.LastExit = lastExit

	if firstEntry != nil && lastExit != nil {
		result.TotalHours = clampWorkedHours(lastExit.Sub(*firstEntry).Seconds()/3600, date)
	}

	shiftStart := date.At(timing.StartHour, timing.StartMinute)
	shiftEnd := date.At(timing.EndHour, timing.EndMinute)

	switch {
	case firstEntry != nil:
		graceLimit := shiftStart.AddMinutes(timing.LateThresholdMinutes)
		if firstEntry.After(graceLimit) {
			result.IsLate = true
			minutes := int(firstEntry.Sub(shiftStart).Minutes())
			result.MinutesLate = &minutes
		}
		if firstEntry.After(shiftStart.AddMinutes(30)) {
			result.IsLateBy30Minutes = true
		}
	case lastExit != nil:
		// Check-out only: entry time unknown, assume the worst.
		result.IsLate = true
		result.IsLateBy30Minutes = true
	}

	if lastExit != nil {
		if lastExit.Before(shiftEnd.AddMinutes(-earlyExitSlackMinutes)) {
			result.IsEarlyExit = true
		}
	} else if firstEntry != nil {
		// Check-in only counts as leaving early.
		result.IsEarlyExit = true
	}

	result.Status = statusForHours(result.TotalHours, timing.WorkHours)
	return result
}

// classifySplitDay scores each slot independently and sums the hours.
func classifySplitDay(date paycycle.LocalDate, times []paycycle.LocalTime, timing shift.Timing) attendance.DayHours {
	var result attendance.DayHours
	result.LogCount = len(times)

	slot1, slot2 := *timing.Slot1, *timing.Slot2

	// Midpoint between slot1 end and slot2 start partitions the punches.
	slot1End := date.At(slot1.EndHour, slot1.EndMinute)
	slot2Start := date.At(slot2.StartHour, slot2.StartMinute)
	gap := slot2Start.Sub(slot1End)
	midpoint := slot1End.AddMinutes(int(gap.Minutes() / 2))

	var slot1Times, slot2Times []paycycle.LocalTime
	for _, t := range times {
		if t.Before(midpoint) {
			slot1Times = append(slot1Times, t)
		} else {
			slot2Times = append(slot2Times, t)
		}
	}

	s1 := scoreSlot(date, slot1Times, slot1, timing.LateThresholdMinutes)
	s2 := scoreSlot(date, slot2Times, slot2, timing.LateThresholdMinutes)

	result.TotalHours = clampWorkedHours(s1.hours+s2.hours, date)
	result.IsLate = s1.late || s2.late

	switch {
	case s1.firstIn != nil:
		result.IsLateBy30Minutes = s1.firstIn.After(date.At(slot1.StartHour, slot1.StartMinute).AddMinutes(30))
	case s2.firstIn != nil:
		result.IsLateBy30Minutes = s2.firstIn.After(date.At(slot2.StartHour, slot2.StartMinute).AddMinutes(30))
	default:
		result.IsLateBy30Minutes = true
	}

	if s1.late && s1.minutesLate != nil {
		result.MinutesLate = s1.minutesLate
	} else if s2.late && s2.minutesLate != nil {
		result.MinutesLate = s2.minutesLate
	}

	result.FirstEntry = firstOf(times)
	result.LastExit = lastOf(times)

	slotEnd := date.At(slot2.EndHour, slot2.EndMinute)
	if result.LastExit != nil && result.LastExit.Before(slotEnd.AddMinutes(-earlyExitSlackMinutes)) {
		result.IsEarlyExit = true
	}

	result.Status = statusForHours(result.TotalHours, timing.WorkHours)
	return result
}

type slotScore struct {
	firstIn     *paycycle.LocalTime
	hours       float64
	late        bool
	minutesLate *int
}

func scoreSlot(date paycycle.LocalDate, times []paycycle.LocalTime, slot shift.SlotTiming, graceMinutes int) slotScore {
	var score slotScore
	if len(times) == 0 {
		return score
	}

	firstIn, lastOut := times[0], times[len(times)-1]
	score.firstIn = &firstIn

	slotStart := date.At(slot.StartHour, slot.StartMinute)
	slotEnd := date.At(slot.EndHour, slot.EndMinute)

	score.hours = lastOut.Sub(firstIn).Seconds() / 3600
	maxHours := slotEnd.Sub(slotStart).Hours() + slotCapSlackHours
	if score.hours > maxHours {
		score.hours = maxHours
	}
	if score.hours < 0 {
		score.hours = 0
	}

	// Only judge lateness when the first punch plausibly targets this
	// slot's start.
	window := firstIn.Sub(slotStart).Minutes()
	if window >= -slotLateWindowMinutes && window <= slotLateWindowMinutes {
		if firstIn.After(slotStart.AddMinutes(graceMinutes)) {
			score.late = true
			minutes := int(firstIn.Sub(slotStart).Minutes())
			score.minutesLate = &minutes
		}
	}

	return score
}

func statusForHours(worked, expected float64) attendance.DayStatus {
	switch {
	case worked < expected/2:
		return attendance.StatusAbsent
	case worked >= fullDayRatio*expected:
		return attendance.StatusFullDay
	default:
		return attendance.StatusHalfDay
	}
}

func clampWorkedHours(hours float64, date paycycle.LocalDate) float64 {
	if hours < 0 {
		slog.Warn("negative worked hours clamped to 0", "date", date.String(), "hours", hours)
		return 0
	}
	if hours > 24 {
		slog.Warn("worked hours above 24 clamped", "date", date.String(), "hours", hours)
		return 24
	}
	return hours
}

func firstOf(times []paycycle.LocalTime) *paycycle.LocalTime {
	if len(times) == 0 {
		return nil
	}
	t := times[0]
	return &t
}

func lastOf(times []paycycle.LocalTime) *paycycle.LocalTime {
	if len(times) == 0 {
		return nil
	}
	t := times[len(times)-1]
	return &t
}
