package in

import (
	"context"

	scoresdto "studyhub/internal/modules/scores/dto"
	scoresin "studyhub/internal/modules/scores/port/in"
)

type CLIHandler struct {
	usecase scoresin.Usecase
}

func NewCLIHandler(usecase scoresin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input scoresdto.AddInput) (scoresdto.AddOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) (bool, error) {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, field, direction string) ([]scoresdto.ScoreOutput, error) {
	return h.usecase.List(ctx, scoresdto.ListInput{SortField: field, Direction: direction})
}

func (h CLIHandler) Stats(ctx context.Context) (scoresdto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
