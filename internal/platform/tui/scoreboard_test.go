package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-the-fish/internal/storage"
)

func boardKey(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sb
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 100, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") {
		t.Errorf("View() should open on the high score table, got %q", view)
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("View() should explain an empty table")
	}
	if !strings.Contains(view, "No rounds finished yet") {
		t.Error("View() should show an empty stats line")
	}
}

func TestScoreboardCyclesViews(t *testing.T) {
	store := openStore(t)
	store.SaveScore("scripted", 10)
	store.SaveScore("scripted", 4)
	store.SaveRound(storage.Round{GameID: "scripted", Player: "alice", Outcome: storage.OutcomeWon, Score: 10, Catches: 10, Duration: 42.5})
	store.SaveRound(storage.Round{GameID: "scripted", Player: "bob", Outcome: storage.OutcomeLost, Score: -1, Catches: 2})

	m := NewScoreboardModel(store, 100, 30)
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("high score rows = %d, expected 2", got)
	}

	m = boardKey(t, m, runeKey('f'))
	if m.view != viewFastestWins {
		t.Fatalf("view = %v, expected fastest wins", m.view)
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][1] != "42.5s" || rows[0][2] != "alice" {
		t.Errorf("fastest win rows = %v", rows)
	}

	m = boardKey(t, m, runeKey('f'))
	if got := len(m.table.Rows()); m.view != viewRecentRounds || got != 2 {
		t.Errorf("view = %v with %d rows, expected recent rounds with 2", m.view, got)
	}

	m = boardKey(t, m, runeKey('f'))
	if m.view != viewTopScores {
		t.Errorf("view = %v, expected the cycle to wrap to high scores", m.view)
	}

	if line := m.statsLine(); !strings.Contains(line, "Won 1") || !strings.Contains(line, "Lost 1") {
		t.Errorf("statsLine() = %q", line)
	}
}

func TestScoreboardModeSwitchWraps(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.games) == 0 {
		t.Fatal("expected registered modes")
	}

	start := m.cursor
	for range len(m.games) {
		m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.cursor != start {
		t.Errorf("cursor = %d after a full cycle, expected %d", m.cursor, start)
	}

	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != len(m.games)-1 {
		t.Errorf("cursor = %d, expected the last mode", m.cursor)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := boardKey(t, NewScoreboardModel(nil, 60, 20), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	m = boardKey(t, NewScoreboardModel(nil, 60, 20), runeKey('q'))
	if !m.IsQuitting() || m.IsGoingBack() {
		t.Error("q should quit")
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "Modes") {
		t.Error("wide View() should show the mode sidebar")
	}

	m = boardKey(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if strings.Contains(m.View(), "Modes") {
		t.Error("narrow View() should replace the sidebar with tabs")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Fish", 10, "Fish"},
		{"Catch the Fish", 8, "Catch t."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.expected)
		}
	}
}
