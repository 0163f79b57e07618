package out

import (
	"context"

	"studyhub/internal/modules/journal/domain"
)

type LogStore interface {
	Load(ctx context.Context) ([]domain.Log, error)
	Save(ctx context.Context, logs []domain.Log) error
}

// NoteWriter renders a log as a standalone note. It reports false when an
// identical note is already on disk.
type NoteWriter interface {
	Write(ctx context.Context, log domain.Log) (string, bool, error)
}
