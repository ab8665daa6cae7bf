// Package tui plays Catch the Fish in a terminal with Bubble Tea, locally or
// over SSH. It owns the tick loop, key mapping, menus and the scoreboard;
// games only see input frames and a screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg advances the running game by one fixed step.
type TickMsg time.Time

// tickInterval is the wall-clock time between ticks. Rates outside
// (0, maxTickRate] fall back to defaultTickRate or are capped.
func tickInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = defaultTickRate
	case rate > maxTickRate:
		rate = maxTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
