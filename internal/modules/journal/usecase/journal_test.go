package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	journalout "studyhub/internal/modules/journal/adapter/out"
	journaldto "studyhub/internal/modules/journal/dto"
	journalin "studyhub/internal/modules/journal/port/in"
	"studyhub/internal/modules/journal/service"
	"studyhub/internal/modules/journal/usecase"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/recordstore"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("log-%d", s.n)
}

func newUsecase(t *testing.T, medium recordstore.Medium) (journalin.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	clk := fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewJournalService(clk, &seqID{}, journalout.NewRecordLogStore(medium, nil), journalout.NewMarkdownNoteWriter(dir))
	return usecase.NewInteractor(svc), dir
}

func TestSavingTwiceKeepsLatestContent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	uc, _ := newUsecase(t, medium)

	if _, err := uc.Save(ctx, saveInput("2025-01-10", "Percentages drill", "2", "15")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	saved, err := uc.Save(ctx, saveInput("2025-01-10", "Mock analysis", "-3", "abc"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if saved.ID != "log-1" || saved.Content != "Mock analysis" || saved.StudyHours != 0 || saved.StudyMinutes != 0 {
		t.Fatalf("unexpected saved log %+v", saved)
	}

	raw, _, _ := medium.Get(ctx, recordstore.KeyDailyLogs)
	var stored []map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("decode logs: %v", err)
	}
	if len(stored) != 1 || stored[0]["content"] != "Mock analysis" || stored[0]["date"] != "2025-01-10" {
		t.Fatalf("unexpected stored logs %v", stored)
	}
}

func TestDayNavigation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _ := newUsecase(t, recordstore.NewMemoryMedium())

	today, err := uc.Day(ctx, "")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if today.Log.Date != "2025-01-10" || !today.IsToday || today.HasNext || today.Previous != "2025-01-09" || today.Found {
		t.Fatalf("unexpected today view %+v", today)
	}

	past, err := uc.Day(ctx, "2024-12-31")
	if err != nil {
		t.Fatalf("past day: %v", err)
	}
	if !past.HasNext || past.Next != "2025-01-01" || past.Previous != "2024-12-30" {
		t.Fatalf("unexpected past view %+v", past)
	}

	if _, err := uc.Day(ctx, "10/01/2025"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFutureDaysAreRefused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	uc, _ := newUsecase(t, medium)

	if _, err := uc.Day(ctx, "2025-02-20"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for a future day, got %v", err)
	}
	if _, err := uc.Day(ctx, "2025-01-11"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for tomorrow, got %v", err)
	}
	if _, err := uc.Save(ctx, saveInput("2025-02-20", "from the future", "1", "0")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for a future save, got %v", err)
	}
	if _, ok, _ := medium.Get(ctx, recordstore.KeyDailyLogs); ok {
		t.Fatalf("a refused save must not write")
	}
}

func TestWeekTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _ := newUsecase(t, recordstore.NewMemoryMedium())
	for _, in := range []struct{ date, h, m string }{
		{"2025-01-10", "1", "30"},
		{"2025-01-08", "0", "45"},
		{"2025-01-01", "9", "0"},
	} {
		if _, err := uc.Save(ctx, saveInput(in.date, "", in.h, in.m)); err != nil {
			t.Fatalf("save %s: %v", in.date, err)
		}
	}
	week, err := uc.Week(ctx)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if week.TotalMinutes != 135 || week.DaysLogged != 2 || len(week.Days) != 7 {
		t.Fatalf("unexpected week %+v", week)
	}
}

func TestExportSkipsUnchangedNotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, dir := newUsecase(t, recordstore.NewMemoryMedium())
	if _, err := uc.Save(ctx, saveInput("2025-01-10", "Finished TSD set", "3", "5")); err != nil {
		t.Fatalf("save: %v", err)
	}

	first, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(dir, "2025", "01", "2025-01-10.md")
	if len(first.Written) != 1 || first.Written[0] != want {
		t.Fatalf("unexpected export %+v", first)
	}
	note, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(note), "total_minutes: 185") || !strings.Contains(string(note), "Finished TSD set") {
		t.Fatalf("unexpected note:\n%s", note)
	}

	second, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if len(second.Written) != 0 || second.Unchanged != 1 {
		t.Fatalf("expected unchanged note, got %+v", second)
	}
}

func saveInput(date, content, hours, minutes string) journaldto.SaveInput {
	return journaldto.SaveInput{Date: date, Content: content, Hours: hours, Minutes: minutes}
}
