package service

import (
	"context"
	"fmt"
	"time"

	dashboardin "studyhub/internal/modules/dashboard/port/in"
	goalsin "studyhub/internal/modules/goals/port/in"
	"studyhub/internal/modules/reminder/domain"
	apperrors "studyhub/internal/platform/errors"
)

type ReminderService struct {
	dashboard dashboardin.Usecase
	goals     goalsin.Usecase
}

func NewReminderService(dashboard dashboardin.Usecase, goals goalsin.Usecase) *ReminderService {
	return &ReminderService{dashboard: dashboard, goals: goals}
}

func (s *ReminderService) Digest(ctx context.Context) (domain.Digest, error) {
	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("load summary: %w", err)
	}
	today, err := s.goals.Today(ctx)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("load goals: %w", err)
	}
	d := domain.Digest{
		DaysUntilExam: summary.DaysUntilExam,
		GoalsTotal:    today.Total,
		LoggedToday:   summary.LoggedToday,
	}
	for _, g := range today.Goals {
		if !g.Completed {
			d.PendingGoals = append(d.PendingGoals, g.Text)
		}
	}
	return d, nil
}

// Spec picks the interval when one is given, else the daily time.
func (s *ReminderService) Spec(at, every string) (string, error) {
	if every != "" {
		d, err := time.ParseDuration(every)
		if err != nil {
			return "", fmt.Errorf("%w: interval %q: %v", apperrors.ErrInvalidInput, every, err)
		}
		return domain.IntervalSpec(d)
	}
	return domain.DailySpec(at)
}
