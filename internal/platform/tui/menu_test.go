package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-the-fish/internal/registry"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{endAfter: 100} })
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsRegisteredModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	found := false
	for _, it := range m.items {
		if it.GameID == "scripted" && it.Title == "Scripted" {
			found = true
		}
	}
	if !found {
		t.Fatalf("items = %+v, expected the scripted mode", m.items)
	}
	if !strings.Contains(m.View(), "Scripted") {
		t.Error("View() should show mode titles")
	}
}

func TestMenuShowsRecords(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("scripted", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	var item MenuItem
	for _, it := range m.items {
		if it.GameID == "scripted" {
			item = it
		}
	}
	if item.HighScore != 7 {
		t.Errorf("HighScore = %d, expected 7", item.HighScore)
	}
	if got := item.record(); got != "best 7" {
		t.Errorf("record() = %q, expected %q", got, "best 7")
	}
}

func TestMenuItemRecord(t *testing.T) {
	tests := []struct {
		item     MenuItem
		expected string
	}{
		{MenuItem{}, ""},
		{MenuItem{HighScore: 4}, "best 4"},
		{MenuItem{HighScore: 10, Wins: 3}, "best 10, 3 wins"},
	}
	for _, tt := range tests {
		if got := tt.item.record(); got != tt.expected {
			t.Errorf("record(%+v) = %q, expected %q", tt.item, got, tt.expected)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for i, it := range m.items {
		if it.GameID == "scripted" {
			m.cursor = i
		}
	}

	m, cmd := menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting a mode should end the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != "scripted" {
		t.Errorf("Selected() = %+v, expected scripted", m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at the top, expected 0", m.cursor)
	}
	for range len(m.items) + 3 {
		m, _ = menuKey(t, m, runeKey('j'))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	sb, _ := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() {
		t.Error("tab should ask for the scoreboard")
	}

	q, _ := menuKey(t, m, runeKey('q'))
	if !q.IsQuitting() || q.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
