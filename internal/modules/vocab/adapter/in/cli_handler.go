package in

import (
	"context"

	vocabdto "studyhub/internal/modules/vocab/dto"
	vocabin "studyhub/internal/modules/vocab/port/in"
)

type CLIHandler struct {
	usecase vocabin.Usecase
}

func NewCLIHandler(usecase vocabin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category, query string) (vocabdto.ListOutput, error) {
	return h.usecase.List(ctx, vocabdto.ListInput{Category: category, Query: query})
}

func (h CLIHandler) Add(ctx context.Context, input vocabdto.AddInput) (vocabdto.AddOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Remove(ctx context.Context, id string) (bool, error) {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) Lookup(ctx context.Context, term string) (vocabdto.DefinitionOutput, error) {
	return h.usecase.Lookup(ctx, term)
}
