package core

// Action represents a discrete user action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A - nudge pointer left
	ActionRight             // Right arrow, D - nudge pointer right
	ActionNewGame           // N - start a new match, keeping the score
	ActionPause             // P, Space - pause/unpause
	ActionResetScore        // R - zero both scores and start over
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNewGame:
		return "NewGame"
	case ActionPause:
		return "Pause"
	case ActionResetScore:
		return "ResetScore"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the continuous input sampled once per simulation tick.
// The only continuous input is a single pointer position in simulation units.
type InputFrame struct {
	Pointer    Vec
	HasPointer bool // False until the host has seen any pointer input
}

// NewInputFrame creates an input frame positioned at the given pointer.
func NewInputFrame(x, y float64) InputFrame {
	return InputFrame{Pointer: Vec{X: x, Y: y}, HasPointer: true}
}
