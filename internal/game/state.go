package game

type State int

const (
	Playing State = iota
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Event is what a controller call did, for front-ends that react
// to it (sounds, redraws).
type Event int

const (
	EventNone Event = iota
	EventRevealed
	EventFlagged
	EventDetonated
	EventShockwave
	EventWon
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventRevealed:
		return "revealed"
	case EventFlagged:
		return "flagged"
	case EventDetonated:
		return "detonated"
	case EventShockwave:
		return "shockwave"
	case EventWon:
		return "won"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Observer is notified of every event a front-end gets back from
// the controller.
type Observer interface {
	Notify(Event)
}

type nopObserver struct{}

func (nopObserver) Notify(Event) {}

// NopObserver ignores all events.
var NopObserver Observer = nopObserver{}
