package vault

import (
	"math/rand/v2"

	vaultdto "studyhub/internal/modules/vault/dto"
)

// Deck walks a fixed set of flashcards. Movement wraps at both ends.
type Deck struct {
	cards    []vaultdto.CardOutput
	index    int
	revealed bool
	mastered map[int]struct{}
	pick     func(n int) int
}

// NewDeck builds a deck starting at the first card. pick chooses the shuffle
// target and defaults to a uniform random index.
func NewDeck(cards []vaultdto.CardOutput, pick func(n int) int) *Deck {
	if pick == nil {
		pick = rand.IntN
	}
	return &Deck{cards: cards, mastered: map[int]struct{}{}, pick: pick}
}

func (d *Deck) Len() int   { return len(d.cards) }
func (d *Deck) Index() int { return d.index }

func (d *Deck) Current() (vaultdto.CardOutput, bool) {
	if len(d.cards) == 0 {
		return vaultdto.CardOutput{}, false
	}
	return d.cards[d.index], true
}

func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.cards)
	d.revealed = false
}

func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.revealed = false
}

// Shuffle jumps to a random card.
func (d *Deck) Shuffle() {
	if len(d.cards) == 0 {
		return
	}
	d.index = d.pick(len(d.cards))
	d.revealed = false
}

func (d *Deck) Flip()          { d.revealed = !d.revealed }
func (d *Deck) Revealed() bool { return d.revealed }

// ToggleMastered flips the mastered mark of the current card and reports the
// new state.
func (d *Deck) ToggleMastered() bool {
	if len(d.cards) == 0 {
		return false
	}
	if _, ok := d.mastered[d.index]; ok {
		delete(d.mastered, d.index)
		return false
	}
	d.mastered[d.index] = struct{}{}
	return true
}

func (d *Deck) IsMastered() bool {
	_, ok := d.mastered[d.index]
	return ok
}

func (d *Deck) MasteredCount() int { return len(d.mastered) }
