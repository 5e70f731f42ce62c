package timeutil

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClock = errors.New("invalid HH:MM time")

// ClampToDay truncates t to local midnight.
func ClampToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Days enumerates every calendar day from start to end inclusive.
// An inverted range is swapped before enumeration.
func Days(start, end time.Time) []time.Time {
	start, end = ClampToDay(start), ClampToDay(end)
	if end.Before(start) {
		start, end = end, start
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Months enumerates the first day of every month from start to end inclusive.
func Months(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	if last.Before(first) {
		first, last = last, first
	}

	var months []time.Time
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// ParseHHMM parses a strict 24-hour "HH:MM" clock string.
func ParseHHMM(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

// AtClock combines a calendar day with an "HH:MM" time of day.
func AtClock(day time.Time, hhmm string) (time.Time, error) {
	hour, minute, err := ParseHHMM(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// ComposeStartEnd builds the concrete start and end instants of an event from
// its day range and clock times. endDay may equal day for single-day events.
// If the composed end does not land strictly after the start, the end day is
// rolled forward by one calendar day: an event from 23:30 to 00:15 crosses
// midnight rather than ending before it begins.
func ComposeStartEnd(day, endDay time.Time, startHHMM, endHHMM string) (start, end time.Time, err error) {
	start, err = AtClock(day, startHHMM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endDay.IsZero() {
		endDay = day
	}
	end, err = AtClock(endDay, endHHMM)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}
