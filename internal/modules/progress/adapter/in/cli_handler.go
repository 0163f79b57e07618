package in

import (
	"context"

	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category, unit string) ([]progressdto.ItemOutput, error) {
	return h.usecase.List(ctx, progressdto.ListInput{Category: category, Unit: unit})
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (progressdto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, id)
}

func (h CLIHandler) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
