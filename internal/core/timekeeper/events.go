package timekeeper

import "time"

// State represents the current TimeKeeper phase.
type State string

const (
	StateWork       State = "work"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
	StatePaused     State = "paused"
)

// IsBreak reports whether the state is a short or long break.
func (state State) IsBreak() bool {
	return state == StateShortBreak || state == StateLongBreak
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     State
	Previous  State
	Remaining time.Duration
	Progress  float64
	Rounds    int
	At        time.Time
}
