package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/registry"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
)

// MenuKeyMap defines the key bindings of the mode picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the help line.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "b", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	menuFishStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	menuItemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("24")).
			Padding(1, 3)
)

// MenuItem is one mode in the picker with its record so far.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int // 0 when nothing is recorded
	Wins      int
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered mode with its stored record.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if gs, ok := stats[g.ID]; ok {
			item.HighScore = gs.HighScore
			item.Wins = gs.Wins
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)

		case key.Matches(msg, m.keys.Down):
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)

		case key.Matches(msg, m.keys.Play):
			if len(m.items) > 0 {
				picked := m.items[m.cursor]
				m.selected = &picked
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu centered on the screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("C A T C H   T H E   F I S H"))
	b.WriteString("\n")
	b.WriteString(menuFishStyle.Render("  ><>    ~ ~ ~ ~    <><"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if i == m.cursor {
			line = menuPickStyle.Render("> " + line)
		} else {
			line = menuItemStyle.Render(line)
		}
		b.WriteString(line)
		if record := item.record(); record != "" {
			b.WriteString("  " + menuStatStyle.Render(record))
		}
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(menuStatStyle.Render("No modes registered"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuStatStyle.Render("Fly: A/D  Dive: S/Space  Pause: P"))

	box := menuBoxStyle.Render(b.String())
	page := lipgloss.JoinVertical(lipgloss.Center, box, m.help.View(m.keys))

	w, h := m.config.ScreenW, m.config.ScreenH
	if w <= 0 || h <= 0 {
		return page
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, page)
}

func (it MenuItem) record() string {
	switch {
	case it.HighScore <= 0 && it.Wins == 0:
		return ""
	case it.Wins == 0:
		return fmt.Sprintf("best %d", it.HighScore)
	}
	return fmt.Sprintf("best %d, %d wins", it.HighScore, it.Wins)
}

// Selected returns the picked mode, or nil if none was picked.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the outcome of a standalone menu run.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu on its own and returns what the player picked.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
