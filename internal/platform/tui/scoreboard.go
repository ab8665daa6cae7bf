package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-the-fish/internal/registry"
	"github.com/vovakirdan/catch-the-fish/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Below this the mode list becomes a tab line
	sidebarWidth       = 24
	maxRows            = 100 // Rows loaded per table
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.NextView, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		NextView: key.NewBinding(
			key.WithKeys("f", "v"),
			key.WithHelp("f", "switch table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardView selects which table the scoreboard shows.
type scoreboardView int

const (
	viewTopScores scoreboardView = iota
	viewFastestWins
	viewRecentRounds
	viewCount
)

func (v scoreboardView) title() string {
	switch v {
	case viewFastestWins:
		return "FASTEST WINS"
	case viewRecentRounds:
		return "RECENT ROUNDS"
	}
	return "HIGH SCORES"
}

func (v scoreboardView) emptyText() string {
	switch v {
	case viewFastestWins:
		return "No wins recorded yet.\nCatch enough fish to reach the goal!"
	case viewRecentRounds:
		return "No rounds played yet."
	}
	return "No scores recorded yet.\nCatch some fish to set a high score!"
}

func (v scoreboardView) columns() []table.Column {
	switch v {
	case viewFastestWins:
		return []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Time", Width: 8},
			{Title: "Player", Width: 12},
			{Title: "Date", Width: 13},
		}
	case viewRecentRounds:
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Player", Width: 10},
			{Title: "Result", Width: 9},
			{Title: "Score", Width: 6},
			{Title: "Fish", Width: 5},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 13},
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("24")).
				Padding(0, 1)
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int // Selected mode
	store     *storage.Store
	view      scoreboardView
	scores    []storage.ScoreEntry
	wins      []storage.Round
	recent    []storage.Round
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.rebuildTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// rebuildTable recreates the table for the current view and size.
func (m *ScoreboardModel) rebuildTable() {
	t := table.New(
		table.WithColumns(m.view.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, stats, panel borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

// load reads every table and the stats of the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.wins, m.recent, m.stats = nil, nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID
		m.scores, _ = m.store.TopScores(id, maxRows)
		m.wins, _ = m.store.FastestWins(id, maxRows)
		m.recent, _ = m.store.RecentRounds(id, maxRows)
		m.stats, _ = m.store.GetGameStats(id)
	}
	m.fillTable()
}

// fillTable puts the current view's rows into the table.
func (m *ScoreboardModel) fillTable() {
	const date = "Jan 02 15:04"

	var rows []table.Row
	switch m.view {
	case viewFastestWins:
		for i, r := range m.wins {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1), fmt.Sprintf("%.1fs", r.Duration), r.Player, r.CreatedAt.Format(date),
			})
		}
	case viewRecentRounds:
		for _, r := range m.recent {
			rows = append(rows, table.Row{
				r.CreatedAt.Format(date), r.Player, string(r.Outcome), fmt.Sprint(r.Score), fmt.Sprint(r.Catches),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1), fmt.Sprint(s.Score), s.CreatedAt.Format(date),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveMode(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.rebuildTable()
			m.fillTable()
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.moveMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.moveMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.games) > 0 {
		title += " - " + m.games[m.cursor].Title
	}

	panel := boardPanelStyle.Render(m.tableContent())
	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, m.tabs(), "", panel)
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render(title),
		boardDimStyle.Render(m.statsLine()),
		"",
		body,
		"",
		boardDimStyle.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 {
		return page
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

// sidebar lists the modes for wide terminals.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Modes\n")
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.cursor {
			b.WriteString(boardTitleStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return boardPanelStyle.Width(sidebarWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}

// tabs is a one-line mode switcher for narrow terminals.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 12)
		if i == m.cursor {
			parts[i] = boardActiveStyle.Render(name)
		} else {
			parts[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.games[m.cursor].Title)
	}
	return line
}

// statsLine summarizes the selected mode's round history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || (m.stats.Wins == 0 && m.stats.Losses == 0) {
		return "No rounds finished yet"
	}
	line := fmt.Sprintf("Won %d  Lost %d  Fish caught %d", m.stats.Wins, m.stats.Losses, m.stats.TotalCaught)
	if m.stats.BestWinTime > 0 {
		line += fmt.Sprintf("  Best win %.1fs", m.stats.BestWinTime)
	}
	return line
}

// tableContent renders the table or the view's empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.table.Rows()) == 0 {
		return boardEmptyStyle.Render(m.view.emptyText())
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
