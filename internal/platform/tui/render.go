package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// palette holds the ANSI 256 foreground of each core.Color.
var palette = map[core.Color]string{
	core.ColorFoam:       "14",
	core.ColorWave:       "6",
	core.ColorLeaves:     "28",
	core.ColorTrunk:      "130",
	core.ColorFish:       "208",
	core.ColorBird:       "11",
	core.ColorBirdDiving: "3",
	core.ColorBeak:       "214",
	core.ColorTimeOK:     "2",
	core.ColorTimeLow:    "3",
	core.ColorTimeOut:    "1",
	core.ColorBanner:     "229",
}

// styleFor returns the style of a cell color on a row background ("" for none).
func styleFor(c core.Color, background string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := palette[c]; ok {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if c == core.ColorBanner {
		style = style.Bold(true)
	}
	if background != "" {
		style = style.Background(lipgloss.Color(background))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		background := s.RowBackground(y)

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, background).Render(run.String()))
		}
	}
	return sb.String()
}
