package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{-1, 0.2},
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{25, 1.0},
	}

	for _, tc := range tests {
		got := dm.Level(tc.score, 0)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, TimeReduction: 4},
	})

	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := dm.Level(9, 0); got != 0.7 {
		t.Errorf("Level() = %f, expected fixed initial level 0.7", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})

	if got := dm.Level(0, 300); got != 0.5 {
		t.Errorf("Level(ticks=300) = %f, expected 0.5", got)
	}
}

// scaledDifficulty is the default progression switched on, as a preset does.
func scaledDifficulty() DifficultyConfig {
	cfg := DefaultCatchFishConfig().Difficulty
	cfg.Enabled = true
	return cfg
}

func TestDifficultyOffByDefault(t *testing.T) {
	dm := NewDifficultyManager(DefaultCatchFishConfig().Difficulty)

	if dm.IsEnabled() {
		t.Fatal("IsEnabled() = true, expected progression off by default")
	}
	if got := dm.Speed(120, 10, 0); got != 120 {
		t.Errorf("Speed() at score 10 = %f, expected 120", got)
	}
	if got := dm.TimeLimit(10, 10, 0); got != 10 {
		t.Errorf("TimeLimit() at score 10 = %f, expected 10", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(scaledDifficulty())

	if got := dm.Speed(120, 0, 0); got != 120 {
		t.Errorf("Speed() at score 0 = %f, expected 120", got)
	}
	// Max difficulty: 120 * (1 + 1.5)
	if got := dm.Speed(120, 10, 0); got != 300 {
		t.Errorf("Speed() at score 10 = %f, expected 300", got)
	}
}

func TestDifficultyTimeLimit(t *testing.T) {
	dm := NewDifficultyManager(scaledDifficulty())

	if got := dm.TimeLimit(10, 0, 0); got != 10 {
		t.Errorf("TimeLimit() at score 0 = %f, expected 10", got)
	}
	if got := dm.TimeLimit(10, 10, 0); got != 6 {
		t.Errorf("TimeLimit() at score 10 = %f, expected 6", got)
	}
	// Floor at minTimeLimit
	if got := dm.TimeLimit(4, 10, 0); got != minTimeLimit {
		t.Errorf("TimeLimit() = %f, expected floor %f", got, minTimeLimit)
	}
	// A base limit below the floor is kept as is
	if got := dm.TimeLimit(2, 10, 0); got != 2 {
		t.Errorf("TimeLimit() = %f, expected base 2", got)
	}
}

func TestDifficultyCurves(t *testing.T) {
	tests := []struct {
		curve    string
		expected float64 // Level at half progress
	}{
		{"", 0.5},
		{CurveLinear, 0.5},
		{CurveEaseIn, 0.25},
		{CurveEaseOut, 0.75},
		{CurveEaseInOut, 0.5},
		{"bounce", 0.5}, // Unknown curves fall back to linear
	}

	for _, tc := range tests {
		t.Run(tc.curve, func(t *testing.T) {
			dm := NewDifficultyManager(DifficultyConfig{
				Enabled:     true,
				Progression: ProgressionConfig{Type: "score", MaxAt: 10, Curve: tc.curve},
			})
			if got := dm.Level(5, 0); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(5) with %q = %f, expected %f", tc.curve, got, tc.expected)
			}
			if got := dm.Level(10, 0); math.Abs(got-1) > 1e-9 {
				t.Errorf("Level(10) with %q = %f, expected 1", tc.curve, got)
			}
		})
	}
}

func TestValidCurve(t *testing.T) {
	if !ValidCurve(CurveEaseOut) || !ValidCurve("") {
		t.Error("ValidCurve() should accept known curves and the empty default")
	}
	if ValidCurve("bounce") {
		t.Error("ValidCurve(\"bounce\") should be false")
	}
}
