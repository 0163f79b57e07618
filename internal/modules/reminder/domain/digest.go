package domain

import "fmt"

// Digest is the morning nudge.
type Digest struct {
	DaysUntilExam int
	PendingGoals  []string
	GoalsTotal    int
	LoggedToday   bool
}

func (d Digest) Lines() []string {
	lines := []string{fmt.Sprintf("%d days until the exam", d.DaysUntilExam)}
	switch {
	case d.GoalsTotal == 0:
		lines = append(lines, "No goals set for today")
	case len(d.PendingGoals) == 0:
		lines = append(lines, fmt.Sprintf("All %d goals done", d.GoalsTotal))
	default:
		lines = append(lines, fmt.Sprintf("%d of %d goals pending:", len(d.PendingGoals), d.GoalsTotal))
		for _, g := range d.PendingGoals {
			lines = append(lines, "  - "+g)
		}
	}
	if d.LoggedToday {
		lines = append(lines, "Study log written for today")
	} else {
		lines = append(lines, "No study log yet today")
	}
	return lines
}
