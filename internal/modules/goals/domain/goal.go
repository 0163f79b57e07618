package domain

import (
	"time"

	"studyhub/internal/platform/calendar"
)

// Goal is a to-do for a single day. The day is the local calendar day of
// CreatedAt, which is kept as the stored string so records written elsewhere
// survive a save unchanged.
type Goal struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt" validate:"required"`
}

// On reports whether the goal belongs to the local day of now. Goals with an
// unreadable timestamp belong to no day.
func (g Goal) On(now time.Time) bool {
	created, err := calendar.ParseStamp(g.CreatedAt)
	if err != nil {
		return false
	}
	return calendar.SameDay(created, now)
}

// Partition splits goals into the day of now and everything else, keeping
// collection order in both.
func Partition(goals []Goal, now time.Time) (today, others []Goal) {
	today, others = []Goal{}, []Goal{}
	for _, g := range goals {
		if g.On(now) {
			today = append(today, g)
		} else {
			others = append(others, g)
		}
	}
	return today, others
}

// ReplaceDay swaps the day-of-now partition for today. Other days are written
// back first, untouched.
func ReplaceDay(goals, today []Goal, now time.Time) []Goal {
	_, others := Partition(goals, now)
	out := make([]Goal, 0, len(others)+len(today))
	out = append(out, others...)
	return append(out, today...)
}

func Toggle(goals []Goal, id string) ([]Goal, bool) {
	for i := range goals {
		if goals[i].ID == id {
			out := append([]Goal(nil), goals...)
			out[i].Completed = !out[i].Completed
			return out, true
		}
	}
	return goals, false
}

func Delete(goals []Goal, id string) ([]Goal, bool) {
	for i := range goals {
		if goals[i].ID == id {
			out := make([]Goal, 0, len(goals)-1)
			out = append(out, goals[:i]...)
			return append(out, goals[i+1:]...), true
		}
	}
	return goals, false
}
