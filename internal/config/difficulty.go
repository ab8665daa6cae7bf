package config

import (
	"math"

	"github.com/fogleman/ease"
)

// Shortest time limit difficulty scaling can produce, in seconds.
const minTimeLimit = 3.0

// Progression curves. They shape how quickly the level climbs toward 1.0.
const (
	CurveLinear    = "linear"
	CurveEaseIn    = "ease_in"
	CurveEaseOut   = "ease_out"
	CurveEaseInOut = "ease_in_out"
)

var curves = map[string]func(float64) float64{
	"":             ease.Linear,
	CurveLinear:    ease.Linear,
	CurveEaseIn:    ease.InQuad,
	CurveEaseOut:   ease.OutQuad,
	CurveEaseInOut: ease.InOutQuad,
}

// ValidCurve reports whether name is a known progression curve.
func ValidCurve(name string) bool {
	_, ok := curves[name]
	return ok
}

// DifficultyManager turns the score or the elapsed ticks into a difficulty
// level and scales fish speed and the catch time limit with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	curve        func(float64) float64
}

// NewDifficultyManager creates a manager. Unknown curves fall back to linear.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	curve, ok := curves[cfg.Progression.Curve]
	if !ok {
		curve = ease.Linear
	}
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampUnit(cfg.InitialLevel),
		curve:        curve,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far along the progression axis the round is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) (float64, bool) {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return clampUnit(float64(score) / maxAt), true
	case "time":
		return clampUnit(float64(ticks) / maxAt), true
	}
	return 0, false
}

// Level returns the difficulty level in [initial_level, 1.0].
// Negative scores count as zero progress.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.initialLevel
	}
	return d.initialLevel + d.curve(p)*(1.0-d.initialLevel)
}

// Speed scales the fish speed from base up to base*(1+speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// TimeLimit shortens the catch time limit by up to time_reduction seconds.
// It never drops below minTimeLimit unless the base limit already does.
func (d *DifficultyManager) TimeLimit(baseLimit float64, score int, ticks int) float64 {
	limit := baseLimit - d.Level(score, ticks)*d.cfg.Scaling.TimeReduction
	return math.Max(limit, math.Min(baseLimit, minTimeLimit))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
