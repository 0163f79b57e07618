// Package calendar holds the local-day helpers shared by date-partitioned
// collections.
package calendar

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day key format used in persisted records.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar-day key in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay reads a day key as midnight in loc.
func ParseDay(key string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", key, err)
	}
	return day, nil
}

// SameDay reports whether t falls on the calendar day of ref, judged in ref's
// location rather than UTC.
func SameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ShiftDay moves a day key by n calendar days.
func ShiftDay(key string, n int, loc *time.Location) (string, error) {
	day, err := ParseDay(key, loc)
	if err != nil {
		return "", err
	}
	return DayKey(day.AddDate(0, 0, n)), nil
}

// StampLayout renders instants the way browser exports store them:
// UTC with millisecond precision.
const StampLayout = "2006-01-02T15:04:05.000Z07:00"

func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// ParseStamp reads any RFC 3339 instant, with or without fractional seconds.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
