package usecase

import (
	"sync"
	"time"

	"studyhub/internal/modules/pomodoro/domain"
	pomodorodto "studyhub/internal/modules/pomodoro/dto"
	pomodoroin "studyhub/internal/modules/pomodoro/port/in"
)

// Interactor owns one focus timer. Ticks and key presses may arrive from
// different goroutines.
type Interactor struct {
	mu    sync.Mutex
	timer *domain.Timer
	work  time.Duration
}

func NewInteractor(work, rest time.Duration) pomodoroin.Usecase {
	return &Interactor{timer: domain.NewTimer(work, rest), work: work}
}

func (i *Interactor) Tick() pomodorodto.Event {
	i.mu.Lock()
	defer i.mu.Unlock()
	switch i.timer.Tick() {
	case domain.EventWorkDone:
		return pomodorodto.EventWorkDone
	case domain.EventBreakDone:
		return pomodorodto.EventBreakDone
	}
	return pomodorodto.EventNone
}

func (i *Interactor) Toggle() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.timer.Toggle()
}

func (i *Interactor) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.timer.Reset()
}

func (i *Interactor) State() pomodorodto.TimerState {
	i.mu.Lock()
	defer i.mu.Unlock()
	t := i.timer
	return pomodorodto.TimerState{
		Phase:          string(t.Phase()),
		Clock:          t.Clock(),
		Percent:        t.Percent(),
		Running:        t.Running(),
		Sessions:       t.Sessions(),
		FocusedMinutes: t.Sessions() * int(i.work/time.Minute),
	}
}
