package domain_test

import (
	"testing"

	"studyhub/internal/modules/scores/domain"
)

func ids(scores []domain.Score) string {
	out := ""
	for _, s := range scores {
		out += s.ID
	}
	return out
}

func TestSortedIsStable(t *testing.T) {
	t.Parallel()
	scores := []domain.Score{
		{ID: "a", Date: "2025-01-05", TotalScore: 30},
		{ID: "b", Date: "2025-01-01", TotalScore: 30},
		{ID: "c", Date: "2025-01-05", TotalScore: 10},
	}
	if got := ids(domain.Sorted(scores, domain.Order{})); got != "acb" {
		t.Fatalf("default date desc should be acb, got %s", got)
	}
	if got := ids(domain.Sorted(scores, domain.Order{Field: domain.SortByDate, Direction: domain.Asc})); got != "bac" {
		t.Fatalf("date asc should be bac, got %s", got)
	}
	if got := ids(domain.Sorted(scores, domain.Order{Field: domain.SortByTotal, Direction: domain.Desc})); got != "abc" {
		t.Fatalf("total desc should keep a before b, got %s", got)
	}
	if got := ids(domain.Sorted(scores, domain.Order{Field: domain.SortByTotal, Direction: domain.Asc})); got != "cab" {
		t.Fatalf("total asc should be cab, got %s", got)
	}
	if ids(scores) != "abc" {
		t.Fatalf("input must not be reordered")
	}
}

func TestOrderValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Order{}).Validate(); err != nil {
		t.Fatalf("zero order should default to date desc: %v", err)
	}
	if err := (domain.Order{Field: "name"}).Validate(); err == nil {
		t.Fatalf("expected invalid field error")
	}
}
