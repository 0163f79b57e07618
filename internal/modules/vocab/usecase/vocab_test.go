package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	vocabout "studyhub/internal/modules/vocab/adapter/out"
	"studyhub/internal/modules/vocab/domain"
	vocabdto "studyhub/internal/modules/vocab/dto"
	vocabin "studyhub/internal/modules/vocab/port/in"
	"studyhub/internal/modules/vocab/service"
	"studyhub/internal/modules/vocab/usecase"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/recordstore"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("word-%d", s.n)
}

type stubCatalog map[domain.Category][]domain.Entry

func (c stubCatalog) Entries(category domain.Category) []domain.Entry { return c[category] }

type stubDictionary struct {
	def domain.Definition
	err error
}

func (d stubDictionary) Lookup(context.Context, string) (domain.Definition, error) {
	return d.def, d.err
}

func newUsecase(medium recordstore.Medium, dict stubDictionary) vocabin.Usecase {
	catalog := stubCatalog{
		domain.CategoryIdioms: {{Term: "Spill the beans", Meaning: "To reveal a secret"}},
		domain.CategoryDaily:  {{Term: "Ephemeral", Meaning: "Lasting a very short time", Origin: "Greek"}},
	}
	clk := fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := service.NewVocabService(clk, &seqID{}, vocabout.NewRecordItemStore(medium, nil), catalog, dict)
	return usecase.NewInteractor(svc)
}

func TestAddListRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(recordstore.NewMemoryMedium(), stubDictionary{})

	added, err := uc.Add(ctx, vocabdto.AddInput{Term: " Let the cat out of the bag ", Meaning: "Reveal a secret", Category: "idioms"})
	if err != nil || !added.Added {
		t.Fatalf("add: %+v %v", added, err)
	}
	if added.Row.ID != "word-1" || added.Row.Term != "Let the cat out of the bag" || !added.Row.UserAdded {
		t.Fatalf("unexpected row %+v", added.Row)
	}

	idioms, err := uc.List(ctx, vocabdto.ListInput{Category: "idioms"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(idioms.Rows) != 2 || idioms.Rows[0].UserAdded || !idioms.Rows[1].UserAdded || idioms.UserCount != 1 {
		t.Fatalf("unexpected idioms %+v", idioms)
	}

	secret, err := uc.List(ctx, vocabdto.ListInput{Query: "SECRET"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(secret.Rows) != 2 {
		t.Fatalf("expected builtin and user match, got %+v", secret.Rows)
	}

	if removed, err := uc.Remove(ctx, "missing"); err != nil || removed {
		t.Fatalf("removing unknown id should be a no-op: %v %v", removed, err)
	}
	if removed, err := uc.Remove(ctx, "word-1"); err != nil || !removed {
		t.Fatalf("remove: %v %v", removed, err)
	}
	after, _ := uc.List(ctx, vocabdto.ListInput{Category: "idioms"})
	if len(after.Rows) != 1 {
		t.Fatalf("expected only the builtin, got %+v", after.Rows)
	}
}

func TestAddRefusals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	medium := recordstore.NewMemoryMedium()
	uc := newUsecase(medium, stubDictionary{})

	out, err := uc.Add(ctx, vocabdto.AddInput{Term: "Aloof", Meaning: "   ", Category: "daily"})
	if err != nil || out.Added {
		t.Fatalf("blank meaning should be a silent no-op: %+v %v", out, err)
	}
	if _, err := uc.Add(ctx, vocabdto.AddInput{Term: "Aloof", Meaning: "Distant", Category: "slang"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, ok, _ := medium.Get(ctx, recordstore.KeyVocab); ok {
		t.Fatalf("refused adds must not write")
	}
	if _, err := uc.List(ctx, vocabdto.ListInput{Category: "slang"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid category on list, got %v", err)
	}
}

func TestLookupPassesThroughErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := newUsecase(recordstore.NewMemoryMedium(), stubDictionary{def: domain.Definition{Definition: "Present everywhere"}})
	def, err := ok.Lookup(ctx, "To Ubiquitous")
	if err != nil || def.Term != "ubiquitous" || def.Definition != "Present everywhere" {
		t.Fatalf("unexpected lookup %+v %v", def, err)
	}

	down := newUsecase(recordstore.NewMemoryMedium(), stubDictionary{err: apperrors.ErrLookupUnavailable})
	if _, err := down.Lookup(ctx, "ubiquitous"); !errors.Is(err, apperrors.ErrLookupUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
