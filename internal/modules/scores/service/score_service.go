package service

import (
	"context"
	"fmt"
	"strings"

	"studyhub/internal/modules/scores/domain"
	scoresout "studyhub/internal/modules/scores/port/out"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/id"
	"studyhub/internal/platform/validate"
)

type ScoreService struct {
	idGen id.Generator
	store scoresout.ScoreStore
}

func NewScoreService(idGen id.Generator, store scoresout.ScoreStore) *ScoreService {
	return &ScoreService{idGen: idGen, store: store}
}

// Add prepends a new attempt. A blank mock name or date is refused and
// reports false; an unknown exam type or malformed date is an error.
func (s *ScoreService) Add(ctx context.Context, mockName string, exam domain.ExamType, date string, sections domain.Sections) (domain.Score, bool, error) {
	if err := exam.Validate(); err != nil {
		return domain.Score{}, false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	mockName, date = strings.TrimSpace(mockName), strings.TrimSpace(date)
	if mockName == "" || date == "" {
		return domain.Score{}, false, nil
	}
	breakdown, total := domain.Tally(exam, sections)
	score := domain.Score{
		ID:         s.idGen.New(),
		MockName:   mockName,
		ExamType:   exam,
		Date:       date,
		Breakdown:  breakdown,
		TotalScore: total,
	}
	if err := validate.Struct(score); err != nil {
		return domain.Score{}, false, err
	}
	stored, err := s.All(ctx)
	if err != nil {
		return domain.Score{}, false, err
	}
	scores := append([]domain.Score{score}, stored...)
	if err := s.store.Save(ctx, scores); err != nil {
		return domain.Score{}, false, err
	}
	return score, true, nil
}

func (s *ScoreService) Delete(ctx context.Context, id string) (bool, error) {
	scores, err := s.All(ctx)
	if err != nil {
		return false, err
	}
	scores, found := domain.Delete(scores, id)
	if !found {
		return false, nil
	}
	if err := s.store.Save(ctx, scores); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ScoreService) All(ctx context.Context) ([]domain.Score, error) {
	scores, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mock scores: %w", err)
	}
	return scores, nil
}
