package core

import "fmt"

// EventKind identifies an abstract control event, independent of the input device.
// Hosts translate keys, mouse clicks, or SSH input into these events.
type EventKind int

const (
	EventNone          EventKind = iota
	EventConfirm                 // Enter - leave the main menu, retry after game over
	EventCancel                  // Escape - back out, pause/resume
	EventSelectTier              // 1-3 - choose a difficulty tier
	EventSelectCostume           // 1-7 - choose a costume and start a run
	EventJumpPressed             // Space - flap, start holding
	EventJumpReleased            // Space up - stop holding (jump cut)
	EventRestart                 // R - fresh run
	EventToMenu                  // M - back to the main menu from pause
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventConfirm:
		return "Confirm"
	case EventCancel:
		return "Cancel"
	case EventSelectTier:
		return "SelectTier"
	case EventSelectCostume:
		return "SelectCostume"
	case EventJumpPressed:
		return "JumpPressed"
	case EventJumpReleased:
		return "JumpReleased"
	case EventRestart:
		return "Restart"
	case EventToMenu:
		return "ToMenu"
	default:
		return "Unknown"
	}
}

// Event is a single control event delivered by the host.
// Value carries the selection for SelectTier (1-3) and SelectCostume (1-7).
type Event struct {
	Kind  EventKind
	Value int
}

// Confirm, Cancel and friends build events without a payload.
func Confirm() Event      { return Event{Kind: EventConfirm} }
func Cancel() Event       { return Event{Kind: EventCancel} }
func JumpPressed() Event  { return Event{Kind: EventJumpPressed} }
func JumpReleased() Event { return Event{Kind: EventJumpReleased} }
func Restart() Event      { return Event{Kind: EventRestart} }
func ToMenu() Event       { return Event{Kind: EventToMenu} }

// SelectTier builds a tier selection event (1 = easy, 2 = normal, 3 = hard).
func SelectTier(tier int) Event {
	return Event{Kind: EventSelectTier, Value: tier}
}

// SelectCostume builds a costume selection event (1-7).
func SelectCostume(costume int) Event {
	return Event{Kind: EventSelectCostume, Value: costume}
}

func (e Event) String() string {
	switch e.Kind {
	case EventSelectTier, EventSelectCostume:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
