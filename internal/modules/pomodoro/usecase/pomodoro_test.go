package usecase_test

import (
	"testing"
	"time"

	pomodorodto "studyhub/internal/modules/pomodoro/dto"
	"studyhub/internal/modules/pomodoro/usecase"
)

func TestInteractorRunsAFullCycle(t *testing.T) {
	t.Parallel()
	timer := usecase.NewInteractor(2*time.Second, time.Second)

	if ev := timer.Tick(); ev != pomodorodto.EventNone {
		t.Fatalf("paused timer fired %q", ev)
	}
	timer.Toggle()
	if st := timer.State(); !st.Running || st.Phase != pomodorodto.PhaseWork || st.Clock != "00:02" {
		t.Fatalf("unexpected state after start %+v", st)
	}
	if ev := timer.Tick(); ev != pomodorodto.EventNone {
		t.Fatalf("first tick fired %q", ev)
	}
	if st := timer.State(); st.Percent != 50 {
		t.Fatalf("expected half way, got %d", st.Percent)
	}
	if ev := timer.Tick(); ev != pomodorodto.EventWorkDone {
		t.Fatalf("expected work done, got %q", ev)
	}
	st := timer.State()
	if st.Running || st.Phase != pomodorodto.PhaseBreak || st.Sessions != 1 || st.Clock != "00:01" {
		t.Fatalf("unexpected state after work %+v", st)
	}

	timer.Toggle()
	if ev := timer.Tick(); ev != pomodorodto.EventBreakDone {
		t.Fatalf("expected break done, got %q", ev)
	}
	if st := timer.State(); st.Phase != pomodorodto.PhaseWork || st.Running {
		t.Fatalf("unexpected state after break %+v", st)
	}
}

func TestInteractorCountsFocusedMinutes(t *testing.T) {
	t.Parallel()
	timer := usecase.NewInteractor(time.Minute, time.Second)
	timer.Toggle()
	for range 60 {
		timer.Tick()
	}
	timer.Reset()
	st := timer.State()
	if st.Sessions != 1 || st.FocusedMinutes != 1 {
		t.Fatalf("unexpected tally %+v", st)
	}
	if st.Phase != pomodorodto.PhaseWork || st.Clock != "01:00" || st.Running {
		t.Fatalf("reset should leave a paused work phase, got %+v", st)
	}
}
