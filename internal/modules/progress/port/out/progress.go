package out

import (
	"context"

	"studyhub/internal/modules/progress/domain"
)

type ItemStore interface {
	Load(ctx context.Context) ([]domain.Item, error)
	Save(ctx context.Context, items []domain.Item) error
}
