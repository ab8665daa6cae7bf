package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
	"github.com/vovakirdan/catch-the-fish/internal/telemetry"
)

// Options are the collaborators shared by every screen of a session.
// All fields are optional.
type Options struct {
	Store     *storage.Store
	Publisher telemetry.Publisher
	Logger    *log.Logger
	Player    string // Recorded with every round; "local" when empty
}

func (o Options) withDefaults() Options {
	if o.Publisher == nil {
		o.Publisher = telemetry.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	return o
}

// publishErrMsg reports a telemetry failure back to the model.
type publishErrMsg struct{ err error }

// GameModel is the Bubble Tea model for one game, with back-to-menu support.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Leaving the game ends the program
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current round has been stored
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts.withDefaults(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is scaled to the screen, so the round keeps going
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case publishErrMsg:
		m.opts.Logger.Warn("telemetry publish failed", "game", m.game.ID(), "error", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Back leaves a finished or paused round, and pauses a running one
		if m.gameState.GameOver || m.gameState.Paused {
			m.abandon()
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
		return m, nil

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		m.keyMapper.Release()
		return m, tickCmd(m.config.TickRate)
	}

	m.keyMapper.Apply(&m.inputFrame)
	if !m.inputFrame.Empty() {
		m.opts.Logger.Debug("input", "game", m.game.ID(), "frame", m.inputFrame)
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if cmd := m.publishCmd(result.Events); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if m.gameState.GameOver && !m.recorded {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.record(outcome)
	}

	return m, tea.Batch(cmds...)
}

// publishCmd sends events to telemetry off the UI goroutine.
func (m GameModel) publishCmd(events []core.Event) tea.Cmd {
	if len(events) == 0 {
		return nil
	}

	out := make([]telemetry.Event, len(events))
	now := time.Now().UTC()
	for i, ev := range events {
		out[i] = telemetry.Event{
			Game:   m.game.ID(),
			Kind:   string(ev.Kind),
			Score:  ev.Score,
			Player: m.opts.Player,
			At:     now,
		}
	}

	pub := m.opts.Publisher
	return func() tea.Msg {
		for _, ev := range out {
			if err := pub.Publish(ev); err != nil {
				return publishErrMsg{err: err}
			}
		}
		return nil
	}
}

// abandon records a round the player walked away from.
func (m *GameModel) abandon() {
	if m.recorded || m.gameState.PlayTime <= 0 {
		return
	}
	m.record(storage.OutcomeAbandoned)
}

// record stores the round once. Only positive scores reach the high score table.
func (m *GameModel) record(outcome storage.Outcome) {
	m.recorded = true
	st := m.gameState

	m.opts.Logger.Info("round over",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"outcome", outcome,
		"score", st.Score,
		"catches", st.Catches,
	)

	if m.opts.Store == nil {
		return
	}

	if st.Score > 0 && outcome != storage.OutcomeAbandoned {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.opts.Logger.Warn("could not save score", "error", err)
		}
	}

	_, err := m.opts.Store.SaveRound(storage.Round{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Outcome:  outcome,
		Score:    st.Score,
		Catches:  st.Catches,
		Timeouts: st.Timeouts,
		Duration: st.PlayTime,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".catchfish", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player leaves.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
