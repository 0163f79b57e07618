package out

import (
	"context"

	"go.uber.org/zap"

	"studyhub/internal/modules/scores/domain"
	scoresout "studyhub/internal/modules/scores/port/out"
	"studyhub/internal/platform/recordstore"
)

type RecordScoreStore struct {
	scores recordstore.Collection[[]domain.Score]
}

func NewRecordScoreStore(medium recordstore.Medium, logger *zap.Logger) scoresout.ScoreStore {
	return &RecordScoreStore{
		scores: recordstore.NewCollection(medium, recordstore.KeyMockScores, recordstore.List[domain.Score](), logger),
	}
}

func (s *RecordScoreStore) Load(ctx context.Context) ([]domain.Score, error) {
	return s.scores.Get(ctx)
}

func (s *RecordScoreStore) Save(ctx context.Context, scores []domain.Score) error {
	if scores == nil {
		scores = []domain.Score{}
	}
	return s.scores.Set(ctx, scores)
}
