package vocab

import (
	"strings"
	"time"
	"unicode/utf8"
)

// LookupQuiet is how long the term must stay unchanged before a lookup fires.
const LookupQuiet = 1500 * time.Millisecond

// LookupGate debounces lookups and discards stale answers. Every edit bumps
// the sequence; a timer or response carrying an older sequence is ignored.
type LookupGate struct {
	seq uint64
}

// Arm records an edit of the add form. It returns the sequence to tag the
// quiet-period timer with and whether a lookup is wanted at all.
func (g *LookupGate) Arm(term, meaning string) (uint64, bool) {
	g.seq++
	wanted := utf8.RuneCountInString(strings.TrimSpace(term)) > 2 && strings.TrimSpace(meaning) == ""
	return g.seq, wanted
}

// Current reports whether seq still belongs to the latest edit.
func (g *LookupGate) Current(seq uint64) bool {
	return seq == g.seq
}

// Cancel invalidates any pending timer or response.
func (g *LookupGate) Cancel() {
	g.seq++
}
