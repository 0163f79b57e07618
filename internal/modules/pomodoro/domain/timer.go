package domain

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Event reports what a tick completed.
type Event int

const (
	EventNone Event = iota
	EventWorkDone
	EventBreakDone
)

// Timer is a focus timer driven by one-second ticks. It holds no store state.
type Timer struct {
	work      time.Duration
	rest      time.Duration
	phase     Phase
	remaining time.Duration
	running   bool
	sessions  int
}

func NewTimer(work, rest time.Duration) *Timer {
	t := &Timer{work: work, rest: rest}
	t.Reset()
	return t
}

func (t *Timer) Phase() Phase             { return t.phase }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Running() bool            { return t.running }
func (t *Timer) Sessions() int            { return t.sessions }

// Toggle starts or pauses the countdown.
func (t *Timer) Toggle() { t.running = !t.running }

// Reset stops the timer on a fresh work phase. Completed sessions are kept.
func (t *Timer) Reset() {
	t.running = false
	t.phase = PhaseWork
	t.remaining = t.work
}

// Tick advances one second. Reaching zero stops the timer and flips the
// phase; a completed work phase counts a session.
func (t *Timer) Tick() Event {
	if !t.running {
		return EventNone
	}
	if t.remaining > time.Second {
		t.remaining -= time.Second
		return EventNone
	}
	t.running = false
	if t.phase == PhaseWork {
		t.sessions++
		t.phase = PhaseBreak
		t.remaining = t.rest
		return EventWorkDone
	}
	t.phase = PhaseWork
	t.remaining = t.work
	return EventBreakDone
}

// Percent is how much of the current phase has elapsed.
func (t *Timer) Percent() int {
	total := t.work
	if t.phase == PhaseBreak {
		total = t.rest
	}
	if total <= 0 {
		return 0
	}
	return int((total - t.remaining) * 100 / total)
}

// Clock renders the remaining time as MM:SS.
func (t *Timer) Clock() string {
	secs := int(t.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
