package domain

import (
	"time"

	"studyhub/internal/platform/calendar"
)

const SchemaVersion = 1

// Log is the journal entry for one calendar day. Date is a day key and is
// unique across the collection.
type Log struct {
	ID           string `json:"id" validate:"required"`
	Content      string `json:"content"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StudyHours   int    `json:"studyHours" validate:"min=0"`
	StudyMinutes int    `json:"studyMinutes" validate:"min=0"`
}

// TotalMinutes folds hours into minutes.
func (l Log) TotalMinutes() int {
	return l.StudyHours*60 + l.StudyMinutes
}

func Find(logs []Log, date string) (Log, bool) {
	for _, l := range logs {
		if l.Date == date {
			return l, true
		}
	}
	return Log{}, false
}

// Upsert updates the entry for entry.Date in place, keeping its id, or
// appends entry when that day has none.
func Upsert(logs []Log, entry Log) ([]Log, Log) {
	out := append([]Log(nil), logs...)
	for i := range out {
		if out[i].Date == entry.Date {
			out[i].Content = entry.Content
			out[i].StudyHours = entry.StudyHours
			out[i].StudyMinutes = entry.StudyMinutes
			return out, out[i]
		}
	}
	return append(out, entry), entry
}

// CanAdvance reports whether the day after viewing may be shown. Viewing
// never moves past today.
func CanAdvance(viewing, today string) bool {
	return viewing < today
}

type DayTotal struct {
	Date    string
	Minutes int
	Logged  bool
}

// Week returns the seven days ending on today, oldest first.
func Week(logs []Log, today time.Time) []DayTotal {
	start := calendar.StartOfDay(today).AddDate(0, 0, -6)
	out := make([]DayTotal, 0, 7)
	for i := 0; i < 7; i++ {
		key := calendar.DayKey(start.AddDate(0, 0, i))
		day := DayTotal{Date: key}
		if l, ok := Find(logs, key); ok {
			day.Minutes = l.TotalMinutes()
			day.Logged = true
		}
		out = append(out, day)
	}
	return out
}
