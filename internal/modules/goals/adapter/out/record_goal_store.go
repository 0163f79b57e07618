package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/goals/domain"
	goalsout "studyhub/internal/modules/goals/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordGoalStore struct {
	goals recordstore.Collection[[]domain.Goal]
}

func NewRecordGoalStore(medium recordstore.Medium, logger *zap.Logger) goalsout.GoalStore {
	return &RecordGoalStore{
		goals: recordstore.NewCollection(medium, recordstore.KeyDailyGoals, recordstore.List[domain.Goal](), logger),
	}
}

func (s *RecordGoalStore) Load(ctx context.Context) ([]domain.Goal, error) {
	return s.goals.Get(ctx)
}

func (s *RecordGoalStore) Save(ctx context.Context, goals []domain.Goal) error {
	if goals == nil {
		goals = []domain.Goal{}
	}
	return s.goals.Set(ctx, goals)
}
