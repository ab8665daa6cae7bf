// Package core holds the types shared by the game modes and the terminal
// front end: geometry, input frames, events and the cell screen.
// It does not import Bubble Tea.
package core

import "cmp"

// Rect is an integer rectangle: a sprite atlas frame or a block of cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Vec2 is a point or displacement in playfield pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in playfield pixels, anchored at
// its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox builds a box from a position and a size.
func NewBox(pos, size Vec2) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	return spansOverlap(b.X, b.Right(), o.X, o.Right()) &&
		spansOverlap(b.Y, b.Bottom(), o.Y, o.Bottom())
}

// spansOverlap reports whether the half-open spans [a0,a1) and [b0,b1) share a point.
func spansOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
