package usecase

import (
	"context"

	reminderdto "studyhub/internal/modules/reminder/dto"
	reminderin "studyhub/internal/modules/reminder/port/in"
	"studyhub/internal/modules/reminder/service"
)

type Interactor struct {
	svc *service.ReminderService
}

func NewInteractor(svc *service.ReminderService) reminderin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Digest(ctx context.Context) (reminderdto.DigestOutput, error) {
	d, err := i.svc.Digest(ctx)
	if err != nil {
		return reminderdto.DigestOutput{}, err
	}
	return reminderdto.DigestOutput{
		DaysUntilExam: d.DaysUntilExam,
		PendingGoals:  d.PendingGoals,
		GoalsTotal:    d.GoalsTotal,
		LoggedToday:   d.LoggedToday,
		Lines:         d.Lines(),
	}, nil
}

func (i *Interactor) Schedule(_ context.Context, input reminderdto.ScheduleInput) (reminderdto.ScheduleOutput, error) {
	spec, err := i.svc.Spec(input.At, input.Every)
	if err != nil {
		return reminderdto.ScheduleOutput{}, err
	}
	return reminderdto.ScheduleOutput{Spec: spec}, nil
}
