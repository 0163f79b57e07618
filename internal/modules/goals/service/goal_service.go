package service

import (
	"context"
	"fmt"
	"strings"

	"studyhub/internal/modules/goals/domain"
	goalsout "studyhub/internal/modules/goals/port/out"
	"studyhub/internal/platform/calendar"
	"studyhub/internal/platform/clock"
	"studyhub/internal/platform/id"
	"studyhub/internal/platform/validate"
)

type GoalService struct {
	clock clock.Clock
	idGen id.Generator
	store goalsout.GoalStore
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalsout.GoalStore) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store}
}

func (s *GoalService) LoadForToday(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	today, _ := domain.Partition(goals, s.clock.Now())
	return today, nil
}

// SaveToday replaces today's partition and leaves every other day's goals as
// they were stored.
func (s *GoalService) SaveToday(ctx context.Context, today []domain.Goal) error {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	return s.store.Save(ctx, domain.ReplaceDay(goals, today, s.clock.Now()))
}

func (s *GoalService) Add(ctx context.Context, text string) (domain.Goal, bool, error) {
	goal := domain.Goal{
		ID:        s.idGen.New(),
		Text:      strings.TrimSpace(text),
		CreatedAt: calendar.Stamp(s.clock.Now()),
	}
	if err := validate.Struct(goal); err != nil {
		return domain.Goal{}, false, nil
	}
	today, err := s.LoadForToday(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	if err := s.SaveToday(ctx, append(today, goal)); err != nil {
		return domain.Goal{}, false, err
	}
	return goal, true, nil
}

func (s *GoalService) Toggle(ctx context.Context, id string) (domain.Goal, bool, error) {
	today, err := s.LoadForToday(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	today, found := domain.Toggle(today, id)
	if !found {
		return domain.Goal{}, false, nil
	}
	if err := s.SaveToday(ctx, today); err != nil {
		return domain.Goal{}, false, err
	}
	for _, g := range today {
		if g.ID == id {
			return g, true, nil
		}
	}
	return domain.Goal{}, false, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) (bool, error) {
	today, err := s.LoadForToday(ctx)
	if err != nil {
		return false, err
	}
	today, found := domain.Delete(today, id)
	if !found {
		return false, nil
	}
	if err := s.SaveToday(ctx, today); err != nil {
		return false, err
	}
	return true, nil
}
