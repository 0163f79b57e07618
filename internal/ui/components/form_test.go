package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"studyhub/internal/ui/components"
)

func typeRunes(t *testing.T, f components.Form, s string) (components.Form, []tea.Msg) {
	t.Helper()
	var msgs []tea.Msg
	for _, r := range s {
		var cmd tea.Cmd
		f, cmd = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		msgs = append(msgs, drain(cmd)...)
	}
	return f, msgs
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestFormEditAndSubmit(t *testing.T) {
	t.Parallel()

	f := components.NewForm()
	f.Open("vocab", "Add word", []components.Field{{Label: "term"}, {Label: "meaning"}})

	f, msgs := typeRunes(t, f, "ab")
	edited := 0
	for _, m := range msgs {
		if e, ok := m.(components.FormEditedMsg); ok {
			edited++
			if e.Tag != "vocab" {
				t.Fatalf("unexpected tag %q", e.Tag)
			}
		}
	}
	if edited != 2 {
		t.Fatalf("expected 2 edit messages, got %d", edited)
	}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !f.Visible() {
		t.Fatalf("enter on the first field should move focus, not submit")
	}
	f.SetValue(1, "meaning")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.Visible() {
		t.Fatalf("enter on the last field should submit")
	}
	var submit components.FormSubmitMsg
	for _, m := range drain(cmd) {
		if s, ok := m.(components.FormSubmitMsg); ok {
			submit = s
		}
	}
	if len(submit.Values) != 2 || submit.Values[0] != "ab" || submit.Values[1] != "meaning" {
		t.Fatalf("unexpected submit: %+v", submit)
	}
}

func TestFormCancel(t *testing.T) {
	t.Parallel()

	f := components.NewForm()
	f.Open("goal", "New goal", []components.Field{{Label: "goal", Value: "read"}})
	if f.Value(0) != "read" {
		t.Fatalf("expected prefilled value, got %q", f.Value(0))
	}

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if f.Visible() {
		t.Fatalf("esc should hide the form")
	}
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if c, ok := msgs[0].(components.FormCancelMsg); !ok || c.Tag != "goal" {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}
