package in

import "studyhub/internal/modules/pomodoro/dto"

type Usecase interface {
	Tick() dto.Event
	Toggle()
	Reset()
	State() dto.TimerState
}
