package catchfish

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/catch-the-fish/internal/config"
	"github.com/vovakirdan/catch-the-fish/internal/core"
)

var testField = Playfield{Width: 900, Height: 600}

const frameDT = 1.0 / 60.0

func newTestController(t *testing.T, seed int64) *Controller {
	t.Helper()
	c, err := NewController(config.DefaultCatchFishConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	return c
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewPlacesEntities(t *testing.T) {
	c := newTestController(t, 1)

	if c.bird.Position() != (core.Vec2{X: 30, Y: 30}) {
		t.Errorf("bird position = %v, expected {30 30}", c.bird.Position())
	}
	p := c.fish.Position()
	if p.X < 150 || p.X > 750 || p.Y < 455 || p.Y > 475 {
		t.Errorf("fish position = %v outside spawn region", p)
	}
	if c.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", c.Phase())
	}
	if c.TimeLimit() != 10 {
		t.Errorf("TimeLimit() = %f, expected 10", c.TimeLimit())
	}
}

func TestNewRejectsInvalidSprites(t *testing.T) {
	cfg := config.DefaultCatchFishConfig()
	cfg.Fish.Frames = nil

	if _, err := NewController(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewController() should fail when the fish has no frames")
	}

	cfg = config.DefaultCatchFishConfig()
	cfg.Bird.FrameDuration = 0
	if _, err := NewController(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewController() should fail when the bird frame duration is zero")
	}
}

func TestStepHorizontalIntent(t *testing.T) {
	c := newTestController(t, 1)
	c.bird.SetPosition(core.Vec2{X: 300, Y: 30})

	snap := c.Step(InputIntent{Right: true}, frameDT, testField)
	if snap.Bird.Position.X != 310 {
		t.Errorf("bird x after right = %f, expected 310", snap.Bird.Position.X)
	}
	if snap.Bird.Mirrored {
		t.Error("bird flying right should not be mirrored")
	}

	snap = c.Step(InputIntent{Left: true}, frameDT, testField)
	if snap.Bird.Position.X != 300 {
		t.Errorf("bird x after left = %f, expected 300", snap.Bird.Position.X)
	}
	if !snap.Bird.Mirrored {
		t.Error("bird flying left should be mirrored")
	}

	// Right wins when both are held
	snap = c.Step(InputIntent{Left: true, Right: true}, frameDT, testField)
	if snap.Bird.Position.X != 310 {
		t.Errorf("bird x with both keys = %f, expected 310", snap.Bird.Position.X)
	}

	snap = c.Step(InputIntent{}, frameDT, testField)
	if snap.Bird.Position.X != 310 {
		t.Errorf("bird x without input = %f, expected 310", snap.Bird.Position.X)
	}
}

func TestStepDiveIsSticky(t *testing.T) {
	c := newTestController(t, 1)
	// Keep the fish out of the way
	c.fish.SetPosition(core.Vec2{X: 800, Y: 470})

	snap := c.Step(InputIntent{Down: true}, frameDT, testField)
	if !snap.Diving {
		t.Fatal("Down should start a dive")
	}
	// Dive moves twice per frame: once with the full velocity, once vertically
	if snap.Bird.Position.Y != 50 {
		t.Errorf("bird y after first dive frame = %f, expected 50", snap.Bird.Position.Y)
	}

	snap = c.Step(InputIntent{}, frameDT, testField)
	if !snap.Diving {
		t.Error("dive should continue without input")
	}
	if snap.Bird.Position.Y != 70 {
		t.Errorf("bird y after second dive frame = %f, expected 70", snap.Bird.Position.Y)
	}
}

func TestStepCatch(t *testing.T) {
	c := newTestController(t, 5)
	fishBefore := c.fish.Position()
	c.bird.SetPosition(fishBefore)
	c.diving = true
	c.elapsed = 4

	snap := c.Step(InputIntent{}, frameDT, testField)

	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if !hasEvent(snap.Events, core.EventCatch) {
		t.Error("expected a catch event")
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", snap.Phase)
	}
	if snap.Diving {
		t.Error("a catch should end the dive")
	}
	if snap.Elapsed != frameDT {
		t.Errorf("Elapsed = %f, expected timer restarted at %f", snap.Elapsed, frameDT)
	}

	bp := snap.Bird.Position
	if bp.X != 50 || bp.Y < 50 || bp.Y > 80 {
		t.Errorf("bird = %v, expected respawn at x=50, y in [50, 80]", bp)
	}
	fp := snap.Fish.Position
	if fp == fishBefore {
		t.Error("fish should relocate after a catch")
	}
	if fp.Y < 455 || fp.Y > 475 {
		t.Errorf("fish y = %f outside spawn band", fp.Y)
	}
	if catches, _, _ := c.Stats(); catches != 1 {
		t.Errorf("catches = %d, expected 1", catches)
	}
}

func TestStepCatchWins(t *testing.T) {
	c := newTestController(t, 5)
	c.score = 9
	c.bird.SetPosition(c.fish.Position())

	snap := c.Step(InputIntent{}, frameDT, testField)

	if snap.Score != 10 {
		t.Errorf("Score = %d, expected 10", snap.Score)
	}
	if snap.Phase != PhaseWon {
		t.Errorf("Phase = %v, expected won", snap.Phase)
	}
	if !hasEvent(snap.Events, core.EventWon) {
		t.Error("expected a won event")
	}
	if !math.IsInf(c.TimeLimit(), 1) {
		t.Errorf("TimeLimit() = %f, expected +Inf after winning", c.TimeLimit())
	}
	if snap.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %f, expected 0 after winning", snap.TimeRemaining)
	}
}

func TestStepCatchBelowThresholdDoesNotWin(t *testing.T) {
	for score := 0; score < 9; score++ {
		c := newTestController(t, int64(score))
		c.score = score
		c.bird.SetPosition(c.fish.Position())

		snap := c.Step(InputIntent{}, frameDT, testField)
		if snap.Phase != PhasePlaying {
			t.Errorf("score %d -> %d: Phase = %v, expected playing", score, snap.Score, snap.Phase)
		}
	}
}

func TestStepTimeoutLoses(t *testing.T) {
	c := newTestController(t, 9)
	c.bird.SetPosition(core.Vec2{X: 400, Y: 200})

	var snap Snapshot
	for i := 0; i < 20 && !snap.Phase.Terminal(); i++ {
		snap = c.Step(InputIntent{}, 0.5, testField)
	}

	if snap.Score != -1 {
		t.Errorf("Score = %d, expected -1", snap.Score)
	}
	if snap.Phase != PhaseLost {
		t.Errorf("Phase = %v, expected lost", snap.Phase)
	}
	if snap.Elapsed != 0 {
		t.Errorf("Elapsed = %f, expected 0", snap.Elapsed)
	}
	bp := snap.Bird.Position
	if bp.X != 50 || bp.Y < 50 || bp.Y > 80 {
		t.Errorf("bird = %v, expected a spawn point", bp)
	}
	if !hasEvent(snap.Events, core.EventTimeout) || !hasEvent(snap.Events, core.EventLost) {
		t.Errorf("Events = %v, expected timeout and lost", snap.Events)
	}
}

func TestStepTimeoutWithPositiveScore(t *testing.T) {
	c := newTestController(t, 9)
	c.score = 3
	c.diving = true
	c.elapsed = c.TimeLimit() - frameDT/2
	c.fish.SetPosition(core.Vec2{X: 800, Y: 470})
	c.bird.SetPosition(core.Vec2{X: 100, Y: 100})

	snap := c.Step(InputIntent{}, frameDT, testField)

	if snap.Score != 2 {
		t.Errorf("Score = %d, expected 2", snap.Score)
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", snap.Phase)
	}
	if snap.Diving {
		t.Error("a timeout should end the dive")
	}
	if _, timeouts, _ := c.Stats(); timeouts != 1 {
		t.Errorf("timeouts = %d, expected 1", timeouts)
	}
}

func TestStepSplash(t *testing.T) {
	c := newTestController(t, 3)
	c.diving = true
	c.fish.SetPosition(core.Vec2{X: 800, Y: 470})
	c.bird.SetPosition(core.Vec2{X: 100, Y: 545})

	// 545 + 10 = 555, bottom 603 > 600
	snap := c.Step(InputIntent{}, frameDT, testField)

	if snap.Bird.Position != (core.Vec2{X: 30, Y: 30}) {
		t.Errorf("bird = %v, expected start {30 30}", snap.Bird.Position)
	}
	if snap.Diving {
		t.Error("a splash should end the dive")
	}
	if !hasEvent(snap.Events, core.EventSplash) {
		t.Error("expected a splash event")
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, a splash should not change the score", snap.Score)
	}
}

func TestStepIdleZeroDeltaIsIdempotent(t *testing.T) {
	c := newTestController(t, 17)
	first := c.Step(InputIntent{}, 0, testField)

	for i := 0; i < 100; i++ {
		snap := c.Step(InputIntent{}, 0, testField)
		if snap.Score != first.Score || snap.Phase != first.Phase {
			t.Fatalf("step %d: score/phase changed to %d/%v", i, snap.Score, snap.Phase)
		}
		if snap.Bird.Position != first.Bird.Position || snap.Fish.Position != first.Fish.Position {
			t.Fatalf("step %d: positions changed", i)
		}
		if snap.Bird.Frame != first.Bird.Frame {
			t.Fatalf("step %d: bird frame changed", i)
		}
	}
}

func TestStepFishSwimsAndBounces(t *testing.T) {
	c := newTestController(t, 2)
	c.fish.SetPosition(core.Vec2{X: 10, Y: 470})

	// 120 px/s for 0.1s = 12 px left, which would cross the left wall
	snap := c.Step(InputIntent{}, 0.1, testField)
	if snap.Fish.Position.X <= 10 {
		t.Errorf("fish x = %f, expected a bounce to the right", snap.Fish.Position.X)
	}

	// It keeps swimming right on later frames
	before := snap.Fish.Position.X
	snap = c.Step(InputIntent{}, 0.1, testField)
	if snap.Fish.Position.X <= before {
		t.Errorf("fish x = %f, expected to keep moving right from %f", snap.Fish.Position.X, before)
	}
}

func TestStepTerminalIsFrozen(t *testing.T) {
	c := newTestController(t, 4)
	c.score = 0
	c.elapsed = c.TimeLimit()
	snap := c.Step(InputIntent{}, frameDT, testField)
	if snap.Phase != PhaseLost {
		t.Fatalf("Phase = %v, expected lost", snap.Phase)
	}

	for i := 0; i < 50; i++ {
		next := c.Step(InputIntent{Right: true, Down: true}, 1, testField)
		if next.Score != snap.Score || next.Phase != PhaseLost {
			t.Fatalf("terminal round changed: %+v", next)
		}
		if next.Bird.Position != snap.Bird.Position {
			t.Fatal("bird moved after the round ended")
		}
		if len(next.Events) != 0 {
			t.Fatalf("terminal step produced events %v", next.Events)
		}
	}
}

func TestEndlessNeverWins(t *testing.T) {
	cfg := config.DefaultCatchFishConfig()
	cfg.Gameplay.WinScore = 0
	c, err := NewController(cfg, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}

	for i := 0; i < 15; i++ {
		c.bird.SetPosition(c.fish.Position())
		c.Step(InputIntent{}, frameDT, testField)
	}

	if c.Score() != 15 {
		t.Errorf("Score() = %d, expected 15", c.Score())
	}
	if c.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, endless mode should keep playing", c.Phase())
	}
}

func TestDefaultPaceIsFixed(t *testing.T) {
	c := newTestController(t, 6)

	for i := 0; i < 5; i++ {
		c.bird.SetPosition(c.fish.Position())
		c.Step(InputIntent{}, frameDT, testField)
	}
	if c.Score() != 5 {
		t.Fatalf("Score() = %d, expected 5", c.Score())
	}
	if c.TimeLimit() != 10 {
		t.Errorf("TimeLimit() = %f, expected 10 at every score", c.TimeLimit())
	}

	// Keep the fish clear of both walls for one step
	c.fish.SetPosition(core.Vec2{X: 400, Y: 460})
	c.bird.SetPosition(core.Vec2{X: 30, Y: 30})
	before := c.fish.Position().X
	c.Step(InputIntent{}, frameDT, testField)
	if step := math.Abs(c.fish.Position().X - before); math.Abs(step-2) > 1e-9 {
		t.Errorf("fish moved %f px in one frame, expected 2", step)
	}
}

func TestDifficultyShortensTimeLimit(t *testing.T) {
	cfg := config.DefaultCatchFishConfig()
	cfg.Difficulty.Enabled = true
	c, err := NewController(cfg, rand.New(rand.NewSource(6)))
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		c.bird.SetPosition(c.fish.Position())
		c.Step(InputIntent{}, frameDT, testField)
	}

	// score 5 of max_at 10, time_reduction 4: 10 - 0.5*4
	if c.TimeLimit() != 8 {
		t.Errorf("TimeLimit() = %f, expected 8", c.TimeLimit())
	}
}

func TestControllerDeterminism(t *testing.T) {
	run := func() Snapshot {
		c := newTestController(t, 12345)
		var snap Snapshot
		for i := 0; i < 600; i++ {
			in := InputIntent{Right: i%90 < 45, Left: i%90 >= 45, Down: i%120 == 0}
			snap = c.Step(in, frameDT, testField)
		}
		return snap
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Bird.Position != b.Bird.Position || a.Fish.Position != b.Fish.Position {
		t.Errorf("same seed and input produced different rounds: %+v vs %+v", a, b)
	}
}
