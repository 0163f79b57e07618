package in

import (
	"context"

	goalsdto "studyhub/internal/modules/goals/dto"
	goalsin "studyhub/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (goalsdto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Add(ctx context.Context, text string) (goalsdto.AddOutput, error) {
	return h.usecase.Add(ctx, text)
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (goalsdto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) (bool, error) {
	return h.usecase.Delete(ctx, id)
}
