package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	pomodorousecase "studyhub/internal/modules/pomodoro/usecase"
	sessiondto "studyhub/internal/modules/session/dto"
	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/ui/components"
)

func newTestModel() Model {
	return NewModel(Deps{Pomodoro: pomodorousecase.NewInteractor(25*time.Minute, 5*time.Minute)})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out
}

func TestMissingUserOpensPrompt(t *testing.T) {
	t.Parallel()

	m := step(t, newTestModel(), tea.WindowSizeMsg{Width: 100, Height: 40})
	m = step(t, m, userLoadedMsg{err: apperrors.ErrNoActiveUser})
	if !m.form.Visible() {
		t.Fatalf("expected the name prompt")
	}
	if !strings.Contains(m.View(), "What should we call you?") {
		t.Fatalf("prompt not rendered")
	}

	m = step(t, m, enteredMsg{out: sessiondto.EnterOutput{}})
	if !m.form.Visible() {
		t.Fatalf("a refused name should keep the prompt open")
	}

	m.form.Close()
	m = step(t, m, enteredMsg{out: sessiondto.EnterOutput{Entered: true, User: sessiondto.UserOutput{Name: "Asha Rao"}}})
	if m.user != "Asha Rao" {
		t.Fatalf("expected user to be set, got %q", m.user)
	}
}

func TestTabNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != tabVault {
		t.Fatalf("expected vault tab, got %d", m.activeTab)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != tabLog {
		t.Fatalf("shift+tab should wrap to the last tab, got %d", m.activeTab)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if m.activeTab != tabScores {
		t.Fatalf("expected scores tab, got %d", m.activeTab)
	}
}

func TestStatusMessageReplacesStatus(t *testing.T) {
	t.Parallel()

	m := step(t, newTestModel(), components.StatusMsg("goal added"))
	if m.status != "goal added" {
		t.Fatalf("unexpected status %q", m.status)
	}
}
