package usecase

import (
	"context"

	"studyhub/internal/modules/journal/domain"
	journaldto "studyhub/internal/modules/journal/dto"
	journalin "studyhub/internal/modules/journal/port/in"
	"studyhub/internal/modules/journal/service"
)

type Interactor struct {
	svc *service.JournalService
}

func NewInteractor(svc *service.JournalService) journalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Day(ctx context.Context, date string) (journaldto.DayOutput, error) {
	date, err := i.svc.Resolve(date)
	if err != nil {
		return journaldto.DayOutput{}, err
	}
	prev, next, hasNext, err := i.svc.Neighbours(date)
	if err != nil {
		return journaldto.DayOutput{}, err
	}
	out := journaldto.DayOutput{
		Log:      journaldto.LogOutput{Date: date},
		Previous: prev,
		Next:     next,
		HasNext:  hasNext,
		IsToday:  date == i.svc.Today(),
	}
	l, ok, err := i.svc.LoadForDate(ctx, date)
	if err != nil {
		return journaldto.DayOutput{}, err
	}
	if ok {
		out.Log = toOutput(l)
		out.Found = true
	}
	return out, nil
}

func (i *Interactor) Save(ctx context.Context, input journaldto.SaveInput) (journaldto.LogOutput, error) {
	date, err := i.svc.Resolve(input.Date)
	if err != nil {
		return journaldto.LogOutput{}, err
	}
	saved, err := i.svc.Save(ctx, date, input.Content, input.Hours, input.Minutes)
	if err != nil {
		return journaldto.LogOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) Week(ctx context.Context) (journaldto.WeekOutput, error) {
	days, err := i.svc.Week(ctx)
	if err != nil {
		return journaldto.WeekOutput{}, err
	}
	out := journaldto.WeekOutput{}
	for _, d := range days {
		out.Days = append(out.Days, journaldto.DayTotalOutput{Date: d.Date, Minutes: d.Minutes, Logged: d.Logged})
		out.TotalMinutes += d.Minutes
		if d.Logged {
			out.DaysLogged++
		}
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context) (journaldto.ExportOutput, error) {
	written, unchanged, err := i.svc.Export(ctx)
	if err != nil {
		return journaldto.ExportOutput{}, err
	}
	return journaldto.ExportOutput{Written: written, Unchanged: unchanged}, nil
}

func toOutput(l domain.Log) journaldto.LogOutput {
	return journaldto.LogOutput{
		ID:           l.ID,
		Date:         l.Date,
		Content:      l.Content,
		StudyHours:   l.StudyHours,
		StudyMinutes: l.StudyMinutes,
	}
}
