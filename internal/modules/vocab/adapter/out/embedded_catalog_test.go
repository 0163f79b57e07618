package out_test

import (
	"testing"

	vocabout "studyhub/internal/modules/vocab/adapter/out"
	"studyhub/internal/modules/vocab/domain"
)

func TestEmbeddedCatalogCounts(t *testing.T) {
	t.Parallel()
	catalog, err := vocabout.NewEmbeddedCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	want := map[domain.Category]int{
		domain.CategoryIdioms:  15,
		domain.CategoryPhrasal: 15,
		domain.CategoryDaily:   10,
	}
	for c, n := range want {
		if got := len(catalog.Entries(c)); got != n {
			t.Fatalf("%s: expected %d entries, got %d", c, n, got)
		}
	}
	if first := catalog.Entries(domain.CategoryIdioms)[0]; first.Term != "Bite the bullet" {
		t.Fatalf("unexpected first idiom %+v", first)
	}
	for _, e := range catalog.Entries(domain.CategoryDaily) {
		if e.Origin == "" {
			t.Fatalf("daily word %q missing origin", e.Term)
		}
	}
}
