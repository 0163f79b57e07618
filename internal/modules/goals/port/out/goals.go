package out

import (
	"context"

	"studyhub/internal/modules/goals/domain"
)

type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
}
