package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studyhub/internal/modules/journal/domain"
	journalout "studyhub/internal/modules/journal/port/out"
	"studyhub/internal/platform/markdown"
)

type MarkdownNoteWriter struct {
	dir string
}

func NewMarkdownNoteWriter(dir string) journalout.NoteWriter {
	return &MarkdownNoteWriter{dir: dir}
}

type noteMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	Date          string `yaml:"date"`
	StudyHours    int    `yaml:"study_hours"`
	StudyMinutes  int    `yaml:"study_minutes"`
	TotalMinutes  int    `yaml:"total_minutes"`
}

func (w *MarkdownNoteWriter) Write(_ context.Context, log domain.Log) (string, bool, error) {
	if len(log.Date) != len("2006-01-02") {
		return "", false, fmt.Errorf("log %s has malformed date %q", log.ID, log.Date)
	}
	dir := filepath.Join(w.dir, log.Date[:4], log.Date[5:7])
	path := filepath.Join(dir, log.Date+".md")

	meta := noteMeta{
		SchemaVersion: domain.SchemaVersion,
		ID:            log.ID,
		Date:          log.Date,
		StudyHours:    log.StudyHours,
		StudyMinutes:  log.StudyMinutes,
		TotalMinutes:  log.TotalMinutes(),
	}
	body := fmt.Sprintf("# Study log %s\n\n- Studied: %dh %dm\n\n%s\n", log.Date, log.StudyHours, log.StudyMinutes, strings.TrimSpace(log.Content))

	if existing, err := os.ReadFile(path); err == nil {
		current := noteMeta{}
		if currentBody, err := markdown.Split(string(existing), &current); err == nil && current == meta && strings.TrimPrefix(currentBody, "\n") == body {
			return path, false, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("read journal note: %w", err)
	}

	rendered, err := markdown.Render(meta, body)
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create journal dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", false, fmt.Errorf("write journal note: %w", err)
	}
	return path, true, nil
}
