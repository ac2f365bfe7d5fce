package session

import "fmt"

// EventKind classifies a Session event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFoodEaten
	EventMilestone
	EventResumed
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFoodEaten:
		return "food"
	case EventMilestone:
		return "milestone"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a side-channel notification for audio and logging.
type Event struct {
	Kind  EventKind
	Score int
	Level int    // milestone level for EventMilestone and EventResumed
	Text  string // default milestone text for EventMilestone
}
