package dto

const (
	PhaseWork  = "work"
	PhaseBreak = "break"
)

// Event names what a tick completed. The empty string means nothing did.
type Event string

const (
	EventNone      Event = ""
	EventWorkDone  Event = "work_done"
	EventBreakDone Event = "break_done"
)

type TimerState struct {
	Phase          string
	Clock          string
	Percent        int
	Running        bool
	Sessions       int
	FocusedMinutes int
}
