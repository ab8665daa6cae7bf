package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives a whole remote session in one Bubble Tea program:
// the menu opens either a round or the scoreboard, and both return to it.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the current screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		var next tea.Model
		next, cmd = m.game.Update(msg)
		m.game = next.(GameModel)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.toMenu()
		}

	case screenScores:
		var next tea.Model
		next, cmd = m.board.Update(msg)
		m.board = next.(ScoreboardModel)
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			return m.toMenu()
		}

	default:
		var next tea.Model
		next, cmd = m.menu.Update(msg)
		m.menu = next.(MenuModel)
		switch {
		case m.menu.IsQuitting():
			return m.quit()
		case m.menu.WantsScoreboard():
			m.board = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
			m.screen = screenScores
			return m, m.board.Init()
		case m.menu.Selected() != nil:
			return m.startGame(m.menu.Selected().GameID)
		}
	}
	return m, cmd
}

// startGame swaps the menu for a fresh round. The menu's tea.Quit is
// dropped so the program keeps running.
func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", id, "error", err)
		return m.toMenu()
	}

	cfg := m.menu.Config()
	cfg.Seed = time.Now().UnixNano()
	m.config = cfg
	m.game = NewGameModel(game, cfg, m.opts)
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the current screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.board.View()
	}
	return m.menu.View()
}
