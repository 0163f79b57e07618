package domain

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// Countdown splits the time left before a target instant.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Total   time.Duration
}

func (c Countdown) Passed() bool { return c.Total <= 0 }

// CountdownTo is all zero once target has passed.
func CountdownTo(target, now time.Time) Countdown {
	left := target.Sub(now)
	if left <= 0 {
		return Countdown{}
	}
	return Countdown{
		Days:    int(left / day),
		Hours:   int(left % day / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
		Total:   left,
	}
}

// DaysUntil rounds any partial day up and never goes below zero.
func DaysUntil(target, now time.Time) int {
	left := target.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / day)
	if left%day != 0 {
		days++
	}
	return days
}

// FirstName is the greeting name, falling back for anonymous sessions.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Aspirant"
	}
	return fields[0]
}
