// Package registry keeps the game modes the platform can run. Each mode
// package registers its factories from init, so the CLI, the menu and the
// SSH server discover modes through a blank import.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable mode. Implementations hold pure simulation state;
// input mapping, timing and terminal output belong to the platform.
type Game interface {
	// ID is the stable key used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts a new round. It runs once before the first Step and
	// again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the round by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the round into dst, sized to the terminal.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new instance of the mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
