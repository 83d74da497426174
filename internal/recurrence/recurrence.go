// Package recurrence computes the next due date of a repeating task.
//
// All functions are pure: no clock reads, no state. The time-of-day and
// location of the input are always preserved in the result.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Pattern classifies how often a task repeats.
type Pattern string

const (
	Daily     Pattern = "daily"
	Weekly    Pattern = "weekly"
	Monthly   Pattern = "monthly"
	Quarterly Pattern = "quarterly"
)

// ErrInvalidPattern is returned for pattern values outside the enumerated set.
var ErrInvalidPattern = errors.New("invalid recurrence pattern")

// ParsePattern normalizes a raw string into a Pattern.
func ParsePattern(raw string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
	}
	return p, nil
}

// Valid reports whether p is one of the four supported patterns.
func (p Pattern) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly, Quarterly:
		return true
	}
	return false
}

func (p Pattern) String() string { return string(p) }

// Next returns the occurrence following t for the given pattern.
// The result is always strictly after t.
func Next(t time.Time, p Pattern) (time.Time, error) {
	switch p {
	case Daily:
		return NextDaily(t), nil
	case Weekly:
		return NextWeekly(t), nil
	case Monthly:
		return NextMonthly(t), nil
	case Quarterly:
		return NextQuarterly(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
}

// NextDaily advances t by one calendar day.
func NextDaily(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// NextWeekly advances t by seven calendar days, keeping the day of week.
func NextWeekly(t time.Time) time.Time {
	return t.AddDate(0, 0, 7)
}

// NextMonthly advances t by one calendar month. The day of month is kept
// when it exists in the target month and clamped to the target month's
// last day otherwise (Jan 31 -> Feb 28, or Feb 29 in a leap year).
func NextMonthly(t time.Time) time.Time {
	return addMonthsClamped(t, 1)
}

// NextQuarterly advances t by three calendar months with the same
// day-of-month clamping as NextMonthly.
func NextQuarterly(t time.Time) time.Time {
	return addMonthsClamped(t, 3)
}

// addMonthsClamped adds n months to the year-month pair of t and clamps the
// day of month to the target month's length. A naive AddDate(0, n, 0) would
// let Jan 31 spill into Mar 2/3; working from the first of the month avoids
// that normalization.
func addMonthsClamped(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	year, month := firstOfTarget.Year(), firstOfTarget.Month()

	day := t.Day()
	if last := daysInMonth(month, year); day > last {
		day = last
	}

	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(month time.Month, year int) int {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
