package paycycle

import (
	"fmt"
	"strings"
	"time"
)

// Biometric devices record local wall-clock time. LocalDate and LocalTime
// carry those components as-is: no zone, no conversion. Internally the
// components are stored in a UTC time.Time purely as a calendar container;
// converting one of these values to an instant is always a bug.

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// LocalDate is a calendar date without a time zone.
type LocalDate struct {
	t time.Time
}

// NewLocalDate builds a LocalDate from calendar components.
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseLocalDate parses "YYYY-MM-DD".
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return LocalDate{t: t}, nil
}

// DateOf drops the clock from a database timestamp, keeping its components.
func DateOf(t time.Time) LocalDate {
	return NewLocalDate(t.Year(), t.Month(), t.Day())
}

func (d LocalDate) Year() int         { return d.t.Year() }
func (d LocalDate) Month() time.Month { return d.t.Month() }
func (d LocalDate) Day() int          { return d.t.Day() }
func (d LocalDate) IsZero() bool      { return d.t.IsZero() }

// Weekday returns the day of week with Sunday = 0.
func (d LocalDate) Weekday() int { return int(d.t.Weekday()) }

// IsSunday reports whether the date falls on a Sunday.
func (d LocalDate) IsSunday() bool { return d.t.Weekday() == time.Sunday }

func (d LocalDate) AddDays(n int) LocalDate { return LocalDate{t: d.t.AddDate(0, 0, n)} }

func (d LocalDate) Before(o LocalDate) bool { return d.t.Before(o.t) }
func (d LocalDate) After(o LocalDate) bool  { return d.t.After(o.t) }
func (d LocalDate) Equal(o LocalDate) bool  { return d.t.Equal(o.t) }

// DaysUntil returns the number of calendar days from d to o (o - d).
func (d LocalDate) DaysUntil(o LocalDate) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// At attaches a wall-clock time of day to the date.
func (d LocalDate) At(hour, minute int) LocalTime {
	return LocalTime{t: time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)}
}

// Time exposes the underlying container for database parameters. The value
// is midnight of the date in the UTC container, never an instant.
func (d LocalDate) Time() time.Time { return d.t }

func (d LocalDate) String() string { return d.t.Format(dateLayout) }

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = LocalDate{}
		return nil
	}
	parsed, err := ParseLocalDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocalTime is a wall-clock date-time without a time zone.
type LocalTime struct {
	t time.Time
}

// localTimeLayouts lists the wall-clock shapes the biometric sync writes.
// A trailing "Z" inherited from the source database is stripped before
// parsing: the components are local regardless of what the suffix claims.
var localTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseLocalTime parses a punch timestamp, preserving wall-clock components.
func ParseLocalTime(raw string) (LocalTime, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTime{t: t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid punch timestamp %q", raw)
}

// LocalTimeOf keeps the components of a timestamp-without-zone value scanned
// from the database.
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

func (lt LocalTime) Date() LocalDate {
	return NewLocalDate(lt.t.Year(), lt.t.Month(), lt.t.Day())
}

func (lt LocalTime) Hour() int    { return lt.t.Hour() }
func (lt LocalTime) Minute() int  { return lt.t.Minute() }
func (lt LocalTime) IsZero() bool { return lt.t.IsZero() }

func (lt LocalTime) Before(o LocalTime) bool { return lt.t.Before(o.t) }
func (lt LocalTime) After(o LocalTime) bool  { return lt.t.After(o.t) }

// Sub returns the wall-clock difference lt - o.
func (lt LocalTime) Sub(o LocalTime) time.Duration { return lt.t.Sub(o.t) }

// AddMinutes shifts the wall clock by n minutes.
func (lt LocalTime) AddMinutes(n int) LocalTime {
	return LocalTime{t: lt.t.Add(time.Duration(n) * time.Minute)}
}

// crossoverHour: punches before 05:00 belong to the previous workday
// (night shifts clock out after midnight).
const crossoverHour = 5

// Workday returns the workday the punch belongs to.
func (lt LocalTime) Workday() LocalDate {
	d := lt.Date()
	if lt.Hour() < crossoverHour {
		return d.AddDays(-1)
	}
	return d
}

// Time exposes the UTC-container value for database parameters.
func (lt LocalTime) Time() time.Time { return lt.t }

func (lt LocalTime) String() string { return lt.t.Format(dateTimeLayout) }

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.String() + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*lt = LocalTime{}
		return nil
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
