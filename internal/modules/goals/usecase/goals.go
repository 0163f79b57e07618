package usecase

import (
	"context"

	"studyhub/internal/modules/goals/domain"
	goalsdto "studyhub/internal/modules/goals/dto"
	goalsin "studyhub/internal/modules/goals/port/in"
	"studyhub/internal/modules/goals/service"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Today(ctx context.Context) (goalsdto.TodayOutput, error) {
	today, err := i.svc.LoadForToday(ctx)
	if err != nil {
		return goalsdto.TodayOutput{}, err
	}
	out := goalsdto.TodayOutput{Goals: make([]goalsdto.GoalOutput, 0, len(today)), Total: len(today)}
	for _, g := range today {
		out.Goals = append(out.Goals, toOutput(g))
		if g.Completed {
			out.Done++
		}
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, text string) (goalsdto.AddOutput, error) {
	goal, added, err := i.svc.Add(ctx, text)
	if err != nil || !added {
		return goalsdto.AddOutput{}, err
	}
	return goalsdto.AddOutput{Goal: toOutput(goal), Added: true}, nil
}

func (i *Interactor) Toggle(ctx context.Context, id string) (goalsdto.ToggleOutput, error) {
	goal, found, err := i.svc.Toggle(ctx, id)
	if err != nil || !found {
		return goalsdto.ToggleOutput{}, err
	}
	return goalsdto.ToggleOutput{Goal: toOutput(goal), Found: true}, nil
}

func (i *Interactor) Delete(ctx context.Context, id string) (bool, error) {
	return i.svc.Delete(ctx, id)
}

func toOutput(g domain.Goal) goalsdto.GoalOutput {
	return goalsdto.GoalOutput{ID: g.ID, Text: g.Text, Completed: g.Completed, CreatedAt: g.CreatedAt}
}
