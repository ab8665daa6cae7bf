package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the simulated seconds per tick.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Won      bool    // Whether the game ended in a win
	Paused   bool    // Whether the game is paused
	Catches  int     // Fish caught this round
	Timeouts int     // Time limits missed this round
	PlayTime float64 // Simulated seconds played this round
}

// EventKind identifies something notable that happened during a tick.
type EventKind string

const (
	EventCatch   EventKind = "catch"   // Bird caught the fish
	EventTimeout EventKind = "timeout" // Time limit ran out before a catch
	EventSplash  EventKind = "splash"  // Bird dove past the bottom of the playfield
	EventWon     EventKind = "won"
	EventLost    EventKind = "lost"
)

// Event is a gameplay event with the score at the moment it happened.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
