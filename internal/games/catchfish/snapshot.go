package catchfish

import (
	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/sprite"
)

// Phase is the top-level state of a round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// InputIntent is what the player wants the bird to do this frame.
type InputIntent struct {
	Left  bool
	Right bool
	Down  bool // Start a dive
}

// IntentFromFrame maps platform actions onto an InputIntent.
func IntentFromFrame(in core.InputFrame) InputIntent {
	return InputIntent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Down:  in.Has(core.ActionDive),
	}
}

// Playfield is the size of the world the host renders, in pixels.
type Playfield struct {
	Width  float64
	Height float64
}

// EntitySnapshot is everything a host needs to draw one sprite.
type EntitySnapshot struct {
	Position  core.Vec2
	Size      core.Vec2
	Frame     int
	FrameRect core.Rect // Atlas rectangle of the current frame
	Mirrored  bool      // Draw flipped horizontally (facing left)
}

// Snapshot is the render state returned by every Controller.Step.
type Snapshot struct {
	Bird          EntitySnapshot
	Fish          EntitySnapshot
	Score         int
	Elapsed       float64 // Seconds since the last catch or timeout
	TimeRemaining float64 // Zero once the round has ended
	Diving        bool
	Phase         Phase
	Events        []core.Event // What happened during this step
}

func entitySnapshot(s *sprite.AnimatedSprite) EntitySnapshot {
	return EntitySnapshot{
		Position:  s.Position(),
		Size:      s.Size(),
		Frame:     s.Frame(),
		FrameRect: s.FrameRect(),
		Mirrored:  s.Facing() == sprite.FacingLeft,
	}
}
