package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/tabletennis"
)

// NudgeUnits is how far the left/right keys move the pointer, in
// simulation units.
const NudgeUnits = 40

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "n":
		return core.ActionNewGame, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionResetScore, false
	}

	return core.ActionNone, false
}

// MapMouse converts a mouse message in screen cells to a pointer position
// in simulation units. It reports false for messages that carry no position
// change worth following.
func MapMouse(msg tea.MouseMsg, vp tabletennis.Viewport) (core.Vec, bool) {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		return vp.ToArena(msg.X, msg.Y), true
	default:
		return core.Vec{}, false
	}
}
