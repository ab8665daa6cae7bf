package catchfish

import (
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// backdrop computes per-row background colours for the sky and the lake.
type backdrop struct {
	skyTop     colorful.Color
	skyHorizon colorful.Color
	waterTop   colorful.Color
	waterDeep  colorful.Color
	splash     colorful.Color
	outcome    colorful.Color // Picked by settle when the round ends
	settled    bool
}

// Hue bands, in degrees, the outcome colour is drawn from.
var (
	wonHues  = [2]float64{120, 160} // Greens
	lostHues = [2]float64{-15, 30}  // Reds
)

func newBackdrop() *backdrop {
	skyTop, _ := colorful.Hex("#1d4e89")
	skyHorizon, _ := colorful.Hex("#9ad0ec")
	waterTop, _ := colorful.Hex("#2a7fba")
	waterDeep, _ := colorful.Hex("#0b2545")
	splash, _ := colorful.Hex("#e0f7ff")

	return &backdrop{
		skyTop:     skyTop,
		skyHorizon: skyHorizon,
		waterTop:   waterTop,
		waterDeep:  waterDeep,
		splash:     splash,
	}
}

// sky returns the colour t of the way from the top of the sky (0) to the horizon (1).
func (b *backdrop) sky(t float64) colorful.Color {
	return b.skyTop.BlendLab(b.skyHorizon, ease.InOutQuad(core.Clamp(t, 0, 1))).Clamped()
}

// water returns the colour t of the way from the surface (0) to the lake bed (1).
// flash in [0, 1] brightens the lake after a splash.
func (b *backdrop) water(t, flash float64) colorful.Color {
	c := b.waterTop.BlendLab(b.waterDeep, ease.InOutQuad(core.Clamp(t, 0, 1)))
	if flash > 0 {
		c = c.BlendLab(b.splash, ease.OutQuad(core.Clamp(flash, 0, 1))*0.6)
	}
	return c.Clamped()
}

// settle picks a random outcome colour for a finished round. Later calls
// keep the first pick.
func (b *backdrop) settle(p Phase, rng *rand.Rand) {
	if b.settled || !p.Terminal() {
		return
	}
	band := lostHues
	if p == PhaseWon {
		band = wonHues
	}
	hue := band[0] + rng.Float64()*(band[1]-band[0])
	if hue < 0 {
		hue += 360
	}
	b.outcome = colorful.Hcl(hue, 0.45+rng.Float64()*0.25, 0.35+rng.Float64()*0.2).Clamped()
	b.settled = true
}

// tint shifts a colour towards the outcome colour once the round is over.
func (b *backdrop) tint(c colorful.Color, p Phase) colorful.Color {
	if !b.settled || !p.Terminal() {
		return c
	}
	return c.BlendHcl(b.outcome, 0.45).Clamped()
}
