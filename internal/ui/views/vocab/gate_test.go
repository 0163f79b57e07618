package vocab_test

import (
	"testing"

	"studyhub/internal/ui/views/vocab"
)

func TestLookupGateDropsStaleSequences(t *testing.T) {
	t.Parallel()
	gate := &vocab.LookupGate{}

	if _, wanted := gate.Arm("ab", ""); wanted {
		t.Fatalf("two-letter terms should not trigger a lookup")
	}
	if _, wanted := gate.Arm("abate", "already typed"); wanted {
		t.Fatalf("a filled meaning should not trigger a lookup")
	}
	first, wanted := gate.Arm("aba", "")
	if !wanted || !gate.Current(first) {
		t.Fatalf("expected a current armed lookup")
	}
	second, _ := gate.Arm("abat", "")
	if gate.Current(first) || !gate.Current(second) {
		t.Fatalf("older sequence should be stale")
	}
	gate.Cancel()
	if gate.Current(second) {
		t.Fatalf("cancel should invalidate pending lookups")
	}
}
