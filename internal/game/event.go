package game

// EventKind classifies what happened in a Session.
type EventKind int

const (
	EventWordShown EventKind = iota + 1
	EventMatched
	EventTimedOut
	EventStageChanged
	EventTick
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventWordShown:
		return "word_shown"
	case EventMatched:
		return "matched"
	case EventTimedOut:
		return "timed_out"
	case EventStageChanged:
		return "stage_changed"
	case EventTick:
		return "tick"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event reports a state change to the presentation layer. Score, Level and
// Stage hold the values after the change.
type Event struct {
	Kind  EventKind
	Word  string
	Delta int
	Score int
	Level int
	Stage int
}
