package catchfish

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/catch-the-fish/internal/config"
	"github.com/vovakirdan/catch-the-fish/internal/core"
	"github.com/vovakirdan/catch-the-fish/internal/sprite"
)

// Controller runs one round: a bird trying to catch a fish before time runs out.
// It is not safe for concurrent use; the host owns it and calls Step once per frame.
type Controller struct {
	cfg        config.CatchFishConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	bird      *sprite.AnimatedSprite
	fish      *sprite.AnimatedSprite
	birdSpawn sprite.SpawnRegion
	fishSpawn sprite.SpawnRegion
	fishDir   float64 // -1 swimming left, +1 swimming right

	score     int
	elapsed   float64 // Seconds since the last catch or timeout
	timeLimit float64 // +Inf once the round is over
	diving    bool
	phase     Phase

	ticks    int
	playTime float64
	catches  int
	timeouts int
}

// NewController builds a controller with the bird at its start point and the fish at a
// random point of its spawn region.
func NewController(cfg config.CatchFishConfig, rng *rand.Rand) (*Controller, error) {
	bird, err := sprite.New(sprite.Spec{
		Frames:        frameRects(cfg.Bird.Frames),
		FrameDuration: cfg.Bird.FrameDuration,
		Scale:         cfg.Bird.Scale,
		Position:      core.Vec2{X: cfg.Bird.StartX, Y: cfg.Bird.StartY},
	})
	if err != nil {
		return nil, fmt.Errorf("catchfish: bird: %w", err)
	}

	fish, err := sprite.New(sprite.Spec{
		Frames:        frameRects(cfg.Fish.Frames),
		FrameDuration: cfg.Fish.FrameDuration,
		Scale:         cfg.Fish.Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("catchfish: fish: %w", err)
	}

	c := &Controller{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		bird:       bird,
		fish:       fish,
		birdSpawn:  spawnRegion(cfg.Bird.Spawn),
		fishSpawn:  spawnRegion(cfg.Fish.Spawn),
		fishDir:    -1,
		phase:      PhasePlaying,
	}
	c.fish.ResetToSpawn(c.fishSpawn, rng)
	c.timeLimit = c.difficulty.TimeLimit(cfg.Gameplay.TimeLimit, c.score, c.ticks)

	return c, nil
}

func frameRects(frames []config.FrameConfig) []core.Rect {
	rects := make([]core.Rect, len(frames))
	for i, f := range frames {
		rects[i] = core.NewRect(f.X, f.Y, f.W, f.H)
	}
	return rects
}

func spawnRegion(s config.SpawnConfig) sprite.SpawnRegion {
	return sprite.SpawnRegion{MinX: s.MinX, MaxX: s.MaxX, MinY: s.MinY, MaxY: s.MaxY}
}

// Step advances the round by dt seconds and returns what to draw.
// Once the round is won or lost, Step only reports the final state.
func (c *Controller) Step(in InputIntent, dt float64, field Playfield) Snapshot {
	if c.phase.Terminal() {
		return c.snapshot(nil)
	}

	var events []core.Event
	c.ticks++
	c.playTime += dt

	birdSpeed := c.cfg.Bird.Speed

	// Horizontal flight
	switch {
	case in.Right:
		c.bird.SetVelocityX(birdSpeed)
	case in.Left:
		c.bird.SetVelocityX(-birdSpeed)
	default:
		c.bird.SetVelocityX(0)
	}

	// A dive, once started, lasts until a catch, a splash or a timeout
	if in.Down {
		c.diving = true
	}
	if c.diving {
		c.bird.SetVelocityY(birdSpeed)
	} else {
		c.bird.SetVelocityY(0)
	}

	c.bird.MoveAnimated(dt, field.Width)
	c.moveFish(dt, field.Width)

	if c.bird.Overlaps(c.fish) {
		c.fish.ResetToSpawn(c.fishSpawn, c.rng)
		c.fishDir = -1
		c.bird.ResetToSpawn(c.birdSpawn, c.rng)
		c.diving = false
		c.elapsed = 0
		c.score++
		c.catches++
		events = append(events, core.Event{Kind: core.EventCatch, Score: c.score})

		if c.cfg.Gameplay.WinScore > 0 && c.score == c.cfg.Gameplay.WinScore {
			c.finish(PhaseWon)
			events = append(events, core.Event{Kind: core.EventWon, Score: c.score})
		} else {
			c.refreshTimeLimit()
		}
	}

	if c.bird.Bounds().Bottom() > field.Height {
		c.bird.SetPosition(core.Vec2{X: c.cfg.Bird.StartX, Y: c.cfg.Bird.StartY})
		c.diving = false
		events = append(events, core.Event{Kind: core.EventSplash, Score: c.score})
	}

	c.elapsed += dt
	if c.elapsed >= c.timeLimit {
		c.diving = false
		c.bird.ResetToSpawn(c.birdSpawn, c.rng)
		c.elapsed = 0
		c.score--
		c.timeouts++
		events = append(events, core.Event{Kind: core.EventTimeout, Score: c.score})

		if c.score < 0 {
			c.finish(PhaseLost)
			events = append(events, core.Event{Kind: core.EventLost, Score: c.score})
		} else {
			c.refreshTimeLimit()
		}
	}

	if c.diving {
		c.bird.MoveVertical()
		if c.bird.Overlaps(c.fish) {
			c.diving = false
		}
	}

	return c.snapshot(events)
}

// moveFish swims the fish at the current difficulty speed, keeping its direction.
func (c *Controller) moveFish(dt, width float64) {
	speed := c.difficulty.Speed(c.cfg.Fish.Speed, max(c.score, 0), c.ticks)
	c.fish.SetVelocityX(c.fishDir * speed * dt)
	c.fish.MoveWithBounce(width)
	switch v := c.fish.Velocity().X; {
	case v > 0:
		c.fishDir = 1
	case v < 0:
		c.fishDir = -1
	}
	c.fish.AdvanceFrame(dt)
}

func (c *Controller) refreshTimeLimit() {
	c.timeLimit = c.difficulty.TimeLimit(c.cfg.Gameplay.TimeLimit, max(c.score, 0), c.ticks)
}

// finish ends the round; the timeout can no longer fire afterwards.
func (c *Controller) finish(p Phase) {
	c.phase = p
	c.diving = false
	c.timeLimit = math.Inf(1)
}

func (c *Controller) snapshot(events []core.Event) Snapshot {
	remaining := 0.0
	if !c.phase.Terminal() {
		remaining = math.Max(0, c.timeLimit-c.elapsed)
	}
	return Snapshot{
		Bird:          entitySnapshot(c.bird),
		Fish:          entitySnapshot(c.fish),
		Score:         c.score,
		Elapsed:       c.elapsed,
		TimeRemaining: remaining,
		Diving:        c.diving,
		Phase:         c.phase,
		Events:        events,
	}
}

// Snapshot returns the current render state without advancing the round.
func (c *Controller) Snapshot() Snapshot {
	return c.snapshot(nil)
}

// Phase returns the current phase of the round.
func (c *Controller) Phase() Phase { return c.phase }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// TimeLimit returns the current catch time limit in seconds.
func (c *Controller) TimeLimit() float64 { return c.timeLimit }

// Stats returns round counters: catches, timeouts and simulated play time.
func (c *Controller) Stats() (catches, timeouts int, playTime float64) {
	return c.catches, c.timeouts, c.playTime
}
