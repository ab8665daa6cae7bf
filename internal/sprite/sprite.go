// Package sprite implements animated, bouncing sprites for the playfield.
// A sprite only tracks state (position, velocity, atlas frame); drawing it
// is left to whichever platform renders the game.
package sprite

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/catch-the-fish/internal/core"
)

// ErrInvalidArgument is returned when a sprite is built from an unusable Spec.
var ErrInvalidArgument = errors.New("sprite: invalid argument")

// Facing is the horizontal direction a sprite is drawn in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "right" or "left".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Spec describes how to build an AnimatedSprite.
type Spec struct {
	Frames        []core.Rect // Atlas sub-rectangles, in playback order
	FrameDuration float64     // Seconds each frame stays on screen
	Scale         float64     // Applied to the first frame's size; 0 means 1
	Position      core.Vec2   // Initial top-left position
}

// SpawnRegion is the area a sprite is placed in when it respawns.
// A zero-width axis (Min == Max) pins that coordinate.
type SpawnRegion struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Sample picks a uniformly distributed point inside the region.
func (r SpawnRegion) Sample(rng *rand.Rand) core.Vec2 {
	return core.Vec2{
		X: sampleRange(rng, r.MinX, r.MaxX),
		Y: sampleRange(rng, r.MinY, r.MaxY),
	}
}

func sampleRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// AnimatedSprite is a moving entity with a cyclic frame animation.
type AnimatedSprite struct {
	position core.Vec2
	velocity core.Vec2 // Displacement applied per move call
	size     core.Vec2 // Bounding size after scale

	frames        []core.Rect
	frame         int
	frameDuration float64
	frameElapsed  float64

	facing Facing
}

// New validates spec and returns a sprite showing its first frame.
func New(spec Spec) (*AnimatedSprite, error) {
	if len(spec.Frames) == 0 {
		return nil, fmt.Errorf("%w: no animation frames", ErrInvalidArgument)
	}
	if spec.FrameDuration <= 0 {
		return nil, fmt.Errorf("%w: frame duration must be positive, got %v", ErrInvalidArgument, spec.FrameDuration)
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidArgument, spec.Scale)
	}

	frames := make([]core.Rect, len(spec.Frames))
	copy(frames, spec.Frames)

	return &AnimatedSprite{
		position:      spec.Position,
		size:          core.Vec2{X: float64(frames[0].W) * scale, Y: float64(frames[0].H) * scale},
		frames:        frames,
		frameDuration: spec.FrameDuration,
		facing:        FacingRight,
	}, nil
}

// Position returns the top-left corner.
func (s *AnimatedSprite) Position() core.Vec2 { return s.position }

// Velocity returns the per-move displacement.
func (s *AnimatedSprite) Velocity() core.Vec2 { return s.velocity }

// Size returns the bounding width and height.
func (s *AnimatedSprite) Size() core.Vec2 { return s.size }

// Facing returns the direction the sprite is drawn in.
func (s *AnimatedSprite) Facing() Facing { return s.facing }

// Frame returns the index of the current animation frame.
func (s *AnimatedSprite) Frame() int { return s.frame }

// FrameCount returns the number of animation frames.
func (s *AnimatedSprite) FrameCount() int { return len(s.frames) }

// FrameRect returns the atlas rectangle of the current frame.
func (s *AnimatedSprite) FrameRect() core.Rect { return s.frames[s.frame] }

// Bounds returns the bounding box used for collisions.
func (s *AnimatedSprite) Bounds() core.Box {
	return core.NewBox(s.position, s.size)
}

// SetPosition moves the sprite without touching velocity or animation.
func (s *AnimatedSprite) SetPosition(p core.Vec2) {
	s.position = p
}

// SetVelocity replaces the velocity and recomputes facing.
func (s *AnimatedSprite) SetVelocity(v core.Vec2) {
	s.velocity = v
	s.updateFacing()
}

// SetVelocityX replaces the horizontal velocity and recomputes facing.
func (s *AnimatedSprite) SetVelocityX(vx float64) {
	s.velocity.X = vx
	s.updateFacing()
}

// SetVelocityY replaces the vertical velocity.
func (s *AnimatedSprite) SetVelocityY(vy float64) {
	s.velocity.Y = vy
}

// SetCycle spreads one full animation cycle of the given length over all frames.
// Non-positive durations are ignored.
func (s *AnimatedSprite) SetCycle(seconds float64) {
	if seconds <= 0 {
		return
	}
	s.frameDuration = seconds / float64(len(s.frames))
}

// updateFacing derives facing from the sign of the horizontal velocity.
// A zero velocity keeps the current facing.
func (s *AnimatedSprite) updateFacing() {
	switch {
	case s.velocity.X > 0:
		s.facing = FacingRight
	case s.velocity.X < 0:
		s.facing = FacingLeft
	}
}

// AdvanceFrame accumulates dt and moves to the next frame once the current
// one has been shown for the frame duration. At most one frame is skipped
// per call.
func (s *AnimatedSprite) AdvanceFrame(dt float64) {
	s.frameElapsed += dt
	if s.frameElapsed >= s.frameDuration {
		s.frame = (s.frame + 1) % len(s.frames)
		s.frameElapsed = 0
	}
}

// MoveWithBounce applies the velocity once, turning around at the container
// walls. The wall test runs on the candidate position before the move, so a
// sprite can overshoot a wall by at most one step before it turns.
func (s *AnimatedSprite) MoveWithBounce(containerWidth float64) {
	candidateX := s.position.X + s.velocity.X

	if candidateX < 0 {
		s.velocity.X = math.Abs(s.velocity.X)
		s.updateFacing()
	}
	if candidateX+s.size.X > containerWidth {
		s.velocity.X = -math.Abs(s.velocity.X)
		s.updateFacing()
	}

	s.position = s.position.Add(s.velocity)
}

// MoveAnimated moves the sprite with wall bounce and advances its animation.
func (s *AnimatedSprite) MoveAnimated(dt, containerWidth float64) {
	s.MoveWithBounce(containerWidth)
	s.AdvanceFrame(dt)
}

// MoveVertical applies only the vertical velocity.
func (s *AnimatedSprite) MoveVertical() {
	s.position.Y += s.velocity.Y
}

// ResetToSpawn places the sprite at a random point of region, stops it and
// turns it to face right.
func (s *AnimatedSprite) ResetToSpawn(region SpawnRegion, rng *rand.Rand) {
	s.position = region.Sample(rng)
	s.velocity = core.Vec2{}
	s.facing = FacingRight
}

// Overlaps reports whether the bounding boxes of s and other intersect.
func (s *AnimatedSprite) Overlaps(other *AnimatedSprite) bool {
	return s.Bounds().Intersects(other.Bounds())
}
