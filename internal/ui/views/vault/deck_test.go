package vault_test

import (
	"testing"

	vaultdto "studyhub/internal/modules/vault/dto"
	"studyhub/internal/ui/views/vault"
)

func TestDeckWrapsBothWays(t *testing.T) {
	t.Parallel()
	deck := vault.NewDeck([]vaultdto.CardOutput{{Name: "a"}, {Name: "b"}, {Name: "c"}}, nil)

	deck.Prev()
	if card, _ := deck.Current(); card.Name != "c" {
		t.Fatalf("prev from first should wrap to last, got %q", card.Name)
	}
	deck.Next()
	if card, _ := deck.Current(); card.Name != "a" {
		t.Fatalf("next from last should wrap to first, got %q", card.Name)
	}
}

func TestDeckShuffleAndMastered(t *testing.T) {
	t.Parallel()
	deck := vault.NewDeck([]vaultdto.CardOutput{{Name: "a"}, {Name: "b"}, {Name: "c"}}, func(n int) int { return n - 1 })

	deck.Flip()
	deck.Shuffle()
	if deck.Index() != 2 || deck.Revealed() {
		t.Fatalf("shuffle should land on the picked card face down, index=%d", deck.Index())
	}
	if !deck.ToggleMastered() || !deck.IsMastered() || deck.MasteredCount() != 1 {
		t.Fatalf("expected card to be mastered")
	}
	if deck.ToggleMastered() || deck.MasteredCount() != 0 {
		t.Fatalf("second toggle should clear mastered")
	}
}

func TestEmptyDeck(t *testing.T) {
	t.Parallel()
	deck := vault.NewDeck(nil, nil)
	deck.Next()
	deck.Shuffle()
	if _, ok := deck.Current(); ok || deck.ToggleMastered() {
		t.Fatalf("empty deck should have no current card")
	}
}
