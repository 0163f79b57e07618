package domain_test

import (
	"reflect"
	"testing"

	"studyhub/internal/modules/progress/domain"
)

func TestPercentComplete(t *testing.T) {
	t.Parallel()
	if got := domain.PercentComplete(nil); got != 0 {
		t.Fatalf("empty collection should be 0, got %d", got)
	}
	all := []domain.Item{{ID: "a", Completed: true}, {ID: "b", Completed: true}}
	if got := domain.PercentComplete(all); got != 100 {
		t.Fatalf("all done should be 100, got %d", got)
	}
	third := []domain.Item{{ID: "a", Completed: true}, {ID: "b"}, {ID: "c"}}
	if got := domain.PercentComplete(third); got != 33 {
		t.Fatalf("1/3 should round to 33, got %d", got)
	}
	twoThirds := []domain.Item{{ID: "a", Completed: true}, {ID: "b", Completed: true}, {ID: "c"}}
	if got := domain.PercentComplete(twoThirds); got != 67 {
		t.Fatalf("2/3 should round to 67, got %d", got)
	}
	if got := domain.Percent(1, 8); got != 13 {
		t.Fatalf("12.5 should round half up to 13, got %d", got)
	}
}

func TestPercentByCategory(t *testing.T) {
	t.Parallel()
	items := []domain.Item{
		{ID: "q1", Category: domain.CategoryQuants, Completed: true},
		{ID: "q2", Category: domain.CategoryQuants},
		{ID: "v1", Category: domain.CategoryVerbal},
	}
	if got := domain.PercentByCategory(items, domain.CategoryQuants); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := domain.PercentByCategory(items, domain.CategoryVerbal); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()
	items := []domain.Item{{ID: "q1"}, {ID: "q2"}}
	toggled, found := domain.Toggle(items, "q2")
	if !found || !toggled[1].Completed || toggled[0].Completed {
		t.Fatalf("expected only q2 toggled, got %+v", toggled)
	}
	if items[1].Completed {
		t.Fatalf("input slice must not be mutated")
	}
	same, found := domain.Toggle(items, "missing")
	if found || !reflect.DeepEqual(same, items) {
		t.Fatalf("missing id must be a no-op")
	}
}

func TestDefaultItemsHaveUniqueIDs(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, item := range domain.DefaultItems() {
		if seen[item.ID] {
			t.Fatalf("duplicate seed id %s", item.ID)
		}
		seen[item.ID] = true
		if err := item.Category.Validate(); err != nil {
			t.Fatalf("seed item %s: %v", item.ID, err)
		}
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 seed items, got %d", len(seen))
	}
}
