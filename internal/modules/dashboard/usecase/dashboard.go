package usecase

import (
	"context"

	dashboarddto "studyhub/internal/modules/dashboard/dto"
	dashboardin "studyhub/internal/modules/dashboard/port/in"
	"studyhub/internal/modules/dashboard/service"
)

type Interactor struct {
	svc *service.DashboardService
}

func NewInteractor(svc *service.DashboardService) dashboardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(ctx context.Context) (dashboarddto.SummaryOutput, error) {
	return i.svc.Summary(ctx)
}

func (i *Interactor) Countdown(_ context.Context) (dashboarddto.CountdownOutput, error) {
	return i.svc.Countdown(), nil
}
