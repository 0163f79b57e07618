package out

import (
	"context"

	"studyhub/internal/modules/scores/domain"
)

type ScoreStore interface {
	Load(ctx context.Context) ([]domain.Score, error)
	Save(ctx context.Context, scores []domain.Score) error
}
