package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyhub/internal/modules/dashboard/domain"
	dashboarddto "studyhub/internal/modules/dashboard/dto"
	goalsin "studyhub/internal/modules/goals/port/in"
	journalin "studyhub/internal/modules/journal/port/in"
	progressin "studyhub/internal/modules/progress/port/in"
	scoresdto "studyhub/internal/modules/scores/dto"
	scoresin "studyhub/internal/modules/scores/port/in"
	sessionin "studyhub/internal/modules/session/port/in"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
)

// Sources are the modules the dashboard reads from. It never writes.
type Sources struct {
	Session  sessionin.Usecase
	Progress progressin.Usecase
	Scores   scoresin.Usecase
	Goals    goalsin.Usecase
	Journal  journalin.Usecase
}

type DashboardService struct {
	clock    clock.Clock
	examDate time.Time
	src      Sources
}

func NewDashboardService(clock clock.Clock, examDate time.Time, src Sources) *DashboardService {
	return &DashboardService{clock: clock, examDate: examDate, src: src}
}

func (s *DashboardService) Countdown() dashboarddto.CountdownOutput {
	c := domain.CountdownTo(s.examDate, s.clock.Now())
	return dashboarddto.CountdownOutput{
		Target:  s.examDate,
		Days:    c.Days,
		Hours:   c.Hours,
		Minutes: c.Minutes,
		Seconds: c.Seconds,
		Passed:  c.Passed(),
	}
}

func (s *DashboardService) Summary(ctx context.Context) (dashboarddto.SummaryOutput, error) {
	now := s.clock.Now()
	out := dashboarddto.SummaryOutput{
		DaysUntilExam: domain.DaysUntil(s.examDate, now),
		Countdown:     s.Countdown(),
	}

	user, err := s.src.Session.Current(ctx)
	switch {
	case err == nil:
		out.UserName = user.Name
	case !errors.Is(err, apperrors.ErrNoActiveUser):
		return out, fmt.Errorf("load session: %w", err)
	}
	out.Greeting = domain.FirstName(out.UserName)

	progress, err := s.src.Progress.Summary(ctx)
	if err != nil {
		return out, fmt.Errorf("load progress: %w", err)
	}
	out.ProgressOverall, out.ProgressQuants, out.ProgressVerbal = progress.Overall, progress.Quants, progress.Verbal
	out.TopicsDone, out.TopicsTotal = progress.Done, progress.Total

	goals, err := s.src.Goals.Today(ctx)
	if err != nil {
		return out, fmt.Errorf("load goals: %w", err)
	}
	out.GoalsDone, out.GoalsTotal = goals.Done, goals.Total

	stats, err := s.src.Scores.Stats(ctx)
	if err != nil {
		return out, fmt.Errorf("load score stats: %w", err)
	}
	out.MockCount, out.BestScore, out.AverageScore = stats.Count, stats.Best, stats.Average
	if stats.Count > 0 {
		recent, err := s.src.Scores.List(ctx, scoresdto.ListInput{})
		if err != nil {
			return out, fmt.Errorf("load scores: %w", err)
		}
		latest := recent[0].TotalScore
		out.LatestScore = &latest
	}

	day, err := s.src.Journal.Day(ctx, "")
	if err != nil {
		return out, fmt.Errorf("load today's log: %w", err)
	}
	out.LoggedToday = day.Found
	out.StudyMinutesToday = day.Log.StudyHours*60 + day.Log.StudyMinutes
	return out, nil
}
