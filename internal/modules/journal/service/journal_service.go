package service

import (
	"context"
	"fmt"

	"studyhub/internal/modules/journal/domain"
	journalout "studyhub/internal/modules/journal/port/out"
	"studyhub/internal/platform/calendar"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/id"
	"studyhub/internal/platform/numparse"
	"studyhub/internal/platform/validate"
)

// maxLoggedValue caps typed hours and minutes so totals stay in range.
const maxLoggedValue = 100000

type JournalService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  journalout.LogStore
	writer journalout.NoteWriter
}

func NewJournalService(clock clock.Clock, idGen id.Generator, store journalout.LogStore, writer journalout.NoteWriter) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, store: store, writer: writer}
}

func (s *JournalService) Today() string {
	return calendar.DayKey(s.clock.Now())
}

// Resolve defaults an empty day key to today and checks its format. Days
// after today are refused.
func (s *JournalService) Resolve(date string) (string, error) {
	today := s.Today()
	if date == "" {
		return today, nil
	}
	if _, err := calendar.ParseDay(date, s.clock.Now().Location()); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if date > today {
		return "", fmt.Errorf("%w: %s is after today (%s)", apperrors.ErrInvalidInput, date, today)
	}
	return date, nil
}

func (s *JournalService) load(ctx context.Context) ([]domain.Log, error) {
	logs, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	return logs, nil
}

func (s *JournalService) LoadForDate(ctx context.Context, date string) (domain.Log, bool, error) {
	logs, err := s.load(ctx)
	if err != nil {
		return domain.Log{}, false, err
	}
	l, ok := domain.Find(logs, date)
	return l, ok, nil
}

// Save upserts the entry for date. Hours and minutes come from free text and
// are clamped to non-negative integers.
func (s *JournalService) Save(ctx context.Context, date, content, hours, minutes string) (domain.Log, error) {
	entry := domain.Log{
		ID:           s.idGen.New(),
		Content:      content,
		Date:         date,
		StudyHours:   min(numparse.NonNegative(hours), maxLoggedValue),
		StudyMinutes: min(numparse.NonNegative(minutes), maxLoggedValue),
	}
	if err := validate.Struct(entry); err != nil {
		return domain.Log{}, err
	}
	logs, err := s.load(ctx)
	if err != nil {
		return domain.Log{}, err
	}
	logs, saved := domain.Upsert(logs, entry)
	if err := s.store.Save(ctx, logs); err != nil {
		return domain.Log{}, err
	}
	return saved, nil
}

func (s *JournalService) Neighbours(date string) (prev, next string, hasNext bool, err error) {
	loc := s.clock.Now().Location()
	if prev, err = calendar.ShiftDay(date, -1, loc); err != nil {
		return "", "", false, err
	}
	if !domain.CanAdvance(date, s.Today()) {
		return prev, "", false, nil
	}
	if next, err = calendar.ShiftDay(date, 1, loc); err != nil {
		return "", "", false, err
	}
	return prev, next, true, nil
}

func (s *JournalService) Week(ctx context.Context) ([]domain.DayTotal, error) {
	logs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Week(logs, s.clock.Now()), nil
}

func (s *JournalService) Export(ctx context.Context) ([]string, int, error) {
	logs, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	written := []string{}
	unchanged := 0
	for _, l := range logs {
		path, changed, err := s.writer.Write(ctx, l)
		if err != nil {
			return written, unchanged, err
		}
		if changed {
			written = append(written, path)
		} else {
			unchanged++
		}
	}
	return written, unchanged, nil
}
