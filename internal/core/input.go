package core

import "strings"

// Action is what the player asked for, independent of the key that asked.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Fly left
	ActionRight          // Fly right
	ActionDive           // Start a dive
	ActionUp             // Menu navigation
	ActionConfirm        // Menu selection
	ActionBack           // Leave the round or go back a screen
	ActionRestart        // New round after the last one ended
	ActionQuit           // End the session
	ActionPause          // Toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Dive", "Up", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame ready to use.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Clear empties the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// String lists the active actions, e.g. "Left+Dive".
func (f InputFrame) String() string {
	var names []string
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
