package domain

import (
	"fmt"
	"strconv"
	"time"
)

// CalendarDate is a date with no time component, serialized as YYYY-MM-DD.
// Components are stored directly so the value never shifts when it crosses
// a timezone boundary.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (CalendarDate, error) {
	var d CalendarDate
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return d, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return d, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return d, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil {
		return d, fmt.Errorf("invalid day in %q: %w", s, err)
	}

	if month < 1 || month > 12 {
		return d, fmt.Errorf("invalid date %q: month out of range", s)
	}
	if day < 1 || day > 31 {
		return d, fmt.Errorf("invalid date %q: day out of range", s)
	}

	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// DateOf extracts the calendar date from a point in time, using the
// location the time is already expressed in
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// String returns the date in YYYY-MM-DD format
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// midnight returns the start of the day as a time.Time in the given location
func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Midnight returns the start of the day in the given location
func (d CalendarDate) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// DaysSince returns the whole-day difference between d and other.
// Both dates are anchored to UTC midnight so the result is exact
// regardless of DST rules in any display timezone.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	diff := d.midnightUTC().Sub(other.midnightUTC())
	return int(diff / (24 * time.Hour))
}

// AddDays returns the date n whole days after d (n may be negative)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.midnightUTC().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.DaysSince(other) < 0
}

// After reports whether d is later than other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.DaysSince(other) > 0
}

// IsZero reports whether d is the zero value
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}
