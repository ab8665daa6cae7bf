package core

// Color names what a screen cell depicts. The platform decides how each
// one looks, so games never deal with terminal color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFoam          // Wave crests on the water line
	ColorWave          // Ripples below the surface
	ColorLeaves
	ColorTrunk
	ColorFish
	ColorBird
	ColorBirdDiving
	ColorBeak
	ColorTimeOK  // Time bar, more than half left
	ColorTimeLow // Time bar, under half
	ColorTimeOut // Time bar, last quarter
	ColorBanner  // Win/lose/pause box titles

	colorCount
)

// Valid reports whether c is a known palette entry.
func (c Color) Valid() bool {
	return c < colorCount
}
