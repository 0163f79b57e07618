package in

import (
	"context"

	dashboarddto "studyhub/internal/modules/dashboard/dto"
	dashboardin "studyhub/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashboardin.Usecase
}

func NewCLIHandler(usecase dashboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (dashboarddto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Countdown(ctx context.Context) (dashboarddto.CountdownOutput, error) {
	return h.usecase.Countdown(ctx)
}
