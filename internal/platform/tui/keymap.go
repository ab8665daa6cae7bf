package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// DefaultHoldTicks is how long a single flight key press keeps the bird moving.
// Terminals send key repeats but never key releases, so a held key is
// approximated by extending the action on every repeat.
const DefaultHoldTicks = 18

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // Remaining ticks per held action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		holdTicks: DefaultHoldTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "s", "down", "j", " ":
		return core.ActionDive, false
	case "w", "up", "k":
		return core.ActionUp, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Flight keys are held for a few ticks instead of being set once.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		km.Hold(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// Hold keeps a flight action active for the hold duration.
// Pressing one direction cancels the other.
func (km *KeyMapper) Hold(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
	}
	km.held[a] = km.holdTicks
}

// Apply sets every held action on frame and counts its hold down by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, n := range km.held {
		frame.Set(a)
		if n <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = n - 1
		}
	}
}

// Release drops every held action.
func (km *KeyMapper) Release() {
	clear(km.held)
}
