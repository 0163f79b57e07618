package in

import (
	"context"

	"studyhub/internal/modules/vocab/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) (dto.ListOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
	Remove(ctx context.Context, id string) (bool, error)
	Lookup(ctx context.Context, term string) (dto.DefinitionOutput, error)
}
