// Package catchfish implements Catch the Fish: a bird flies over a lake and
// dives to snatch a fish before the catch timer runs out.
package catchfish

import (
	"math/rand"

	"github.com/vovakirdan/catch-the-fish/internal/config"
	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
)

// Mode selects the winning rule of a round.
type Mode string

const (
	ModeClassic Mode = "classic" // First to the win score
	ModeEndless Mode = "endless" // No win score, play until the score drops below zero
)

// Seconds the water stays lit after a splash.
const splashFlash = 0.4

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game adapts a Controller to the platform's registry.Game interface.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.CatchFishConfig
	ctrl    *Controller
	snap    Snapshot
	paused  bool

	tickCount int
	flash     float64 // Remaining splash highlight, seconds
	backdrop  *backdrop
}

// New creates a classic Catch the Fish game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a game without a win score.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("catchfish", func() registry.Game {
		return New()
	})
	registry.Register("catchfish_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "catchfish_endless"
	}
	return "catchfish"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Catch the Fish (Endless)"
	}
	return "Catch the Fish"
}

// Reset loads the config and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCatchFish(configPath)
	if err != nil {
		cfg = config.DefaultCatchFishConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCatchFishPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeEndless {
		cfg.Gameplay.WinScore = 0
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	ctrl, err := NewController(cfg, rng)
	if err != nil {
		// A loaded config passed validation, so only the built-in one is left
		g.cfg = config.DefaultCatchFishConfig()
		if g.mode == ModeEndless {
			g.cfg.Gameplay.WinScore = 0
		}
		ctrl, _ = NewController(g.cfg, rng)
	}
	g.ctrl = ctrl
	g.snap = ctrl.Snapshot()

	g.paused = false
	g.tickCount = 0
	g.flash = 0
	g.backdrop = newBackdrop()
}

// Step advances the round by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.snap.Phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.FrameDelta()

	g.snap = g.ctrl.Step(IntentFromFrame(in), dt, g.playfield())
	// The round is over, so the controller's generator is free for the backdrop
	g.backdrop.settle(g.snap.Phase, g.ctrl.rng)

	g.flash = max(0, g.flash-dt)
	for _, ev := range g.snap.Events {
		if ev.Kind == core.EventSplash {
			g.flash = splashFlash
		}
	}

	return core.StepResult{State: g.State(), Events: g.snap.Events}
}

func (g *Game) playfield() Playfield {
	return Playfield{Width: g.cfg.Playfield.Width, Height: g.cfg.Playfield.Height}
}

// Snapshot returns the render state produced by the last Step.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.Phase.Terminal(),
		Won:      g.snap.Phase == PhaseWon,
		Paused:   g.paused,
	}
	if g.ctrl != nil {
		st.Catches, st.Timeouts, st.PlayTime = g.ctrl.Stats()
	}
	return st
}
