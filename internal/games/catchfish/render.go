package catchfish

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/catch-the-fish/internal/config"
	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// Visual characters for rendering
const (
	WaveChar    = '~'
	FishRight   = "><>"
	FishLeft    = "<><"
	BeakRight   = '>'
	BeakLeft    = '<'
	TrunkChar   = '|'
	timeBarSize = 20
	hudRows     = 1
	minScreenW  = 30
	minScreenH  = 8
)

// Wing poses, one per animation frame.
var birdWings = []string{`\v/`, `-v-`, `/v\`, `-v-`}

// viewport maps playfield pixels onto screen cells below the HUD.
type viewport struct {
	scaleX float64
	scaleY float64
	top    int
}

func newViewport(pf config.PlayfieldConfig, w, h int) viewport {
	return viewport{
		scaleX: float64(w) / pf.Width,
		scaleY: float64(h-hudRows) / pf.Height,
		top:    hudRows,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.scaleX)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.scaleY)) }

// center returns the cell under the middle of an entity.
func (v viewport) center(e EntitySnapshot) (int, int) {
	return v.col(e.Position.X + e.Size.X/2), v.row(e.Position.Y + e.Size.Y/2)
}

// Render draws the current round to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	v := newViewport(g.cfg.Playfield, w, h)
	waterRow := v.row(g.cfg.Playfield.WaterLine)

	g.drawSky(dst, v, waterRow)
	g.drawWater(dst, waterRow)
	drawTree(dst, 2, waterRow-1)
	drawTree(dst, 9, waterRow-1)
	g.drawFish(dst, v)
	g.drawBird(dst, v)
	g.drawHUD(dst)

	switch {
	case g.snap.Phase == PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.snap.Score))
	case g.snap.Phase == PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", "The bird went hungry  |  Press R to restart")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawSky(dst *core.Screen, v viewport, waterRow int) {
	span := float64(max(waterRow-v.top, 1))
	for y := v.top; y < waterRow && y < dst.Height(); y++ {
		c := g.backdrop.sky(float64(y-v.top) / span)
		dst.SetRowBackground(y, g.backdrop.tint(c, g.snap.Phase).Hex())
	}
}

func (g *Game) drawWater(dst *core.Screen, waterRow int) {
	h := dst.Height()
	span := float64(max(h-waterRow, 1))
	flash := g.flash / splashFlash
	shift := g.tickCount / 8 // Slow drift

	for y := max(waterRow, hudRows); y < h; y++ {
		c := g.backdrop.water(float64(y-waterRow)/span, flash)
		dst.SetRowBackground(y, g.backdrop.tint(c, g.snap.Phase).Hex())

		if y == waterRow {
			dst.DrawHLine(0, y, dst.Width(), WaveChar, core.ColorFoam)
			continue
		}
		for x := 0; x < dst.Width(); x++ {
			if (x+y*3+shift)%7 == 0 {
				dst.SetColored(x, y, WaveChar, core.ColorWave)
			}
		}
	}
}

// drawTree draws a small pine standing on row base.
func drawTree(dst *core.Screen, x, base int) {
	crown := []string{"  ^  ", " /^\\ ", "/^^^\\"}
	top := base - len(crown)
	if top <= hudRows {
		return
	}
	for i, line := range crown {
		for dx, r := range line {
			if r != ' ' {
				dst.SetColored(x+dx, top+i, r, core.ColorLeaves)
			}
		}
	}
	dst.SetColored(x+2, base, TrunkChar, core.ColorTrunk)
}

func (g *Game) drawFish(dst *core.Screen, v viewport) {
	cx, cy := v.center(g.snap.Fish)
	glyph := FishRight
	if g.snap.Fish.Mirrored {
		glyph = FishLeft
	}
	dst.DrawTextColored(cx-len(glyph)/2, cy, glyph, core.ColorFish)
}

func (g *Game) drawBird(dst *core.Screen, v viewport) {
	cx, cy := v.center(g.snap.Bird)
	wings := birdWings[g.snap.Bird.Frame%len(birdWings)]
	color := core.ColorBird
	if g.snap.Diving {
		wings = `\V/`
		color = core.ColorBirdDiving
	}

	x := cx - len(wings)/2
	dst.DrawTextColored(x, cy, wings, color)
	if g.snap.Bird.Mirrored {
		dst.SetColored(x-1, cy, BeakLeft, core.ColorBeak)
	} else {
		dst.SetColored(x+len(wings), cy, BeakRight, core.ColorBeak)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	goal := "Endless"
	if g.cfg.Gameplay.WinScore > 0 {
		goal = fmt.Sprintf("Goal: %d", g.cfg.Gameplay.WinScore)
	}
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  %s", g.snap.Score, goal))

	ratio := 0.0
	if limit := g.ctrl.TimeLimit(); !math.IsInf(limit, 1) && limit > 0 {
		ratio = core.Clamp(g.snap.TimeRemaining/limit, 0, 1)
	}
	filled := int(math.Round(ratio * timeBarSize))
	bar := fmt.Sprintf("[%s%s] %4.1fs",
		strings.Repeat("#", filled), strings.Repeat(".", timeBarSize-filled), g.snap.TimeRemaining)

	color := core.ColorTimeOK
	switch {
	case ratio <= 0.25:
		color = core.ColorTimeOut
	case ratio <= 0.5:
		color = core.ColorTimeLow
	}
	dst.DrawTextColored(dst.Width()-len(bar)-1, 0, bar, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBanner)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
