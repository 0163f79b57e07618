package in

import (
	"context"

	"studyhub/internal/modules/vault/dto"
)

type Usecase interface {
	Search(ctx context.Context, query string) (dto.SearchOutput, error)
	Topics(ctx context.Context) ([]dto.TopicOutput, error)
	Topic(ctx context.Context, id string) (dto.TopicDetailOutput, error)
	Cards(ctx context.Context, topicID string) ([]dto.CardOutput, error)
}
