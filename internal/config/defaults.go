package config

import (
	_ "embed"
)

//go:embed defaults/catchfish.yaml
var defaultCatchFishYAML []byte

// DefaultCatchFishConfig returns the default Catch the Fish configuration.
// It mirrors defaults/catchfish.yaml and is used if the embedded file cannot be parsed.
func DefaultCatchFishConfig() CatchFishConfig {
	return CatchFishConfig{
		Playfield: PlayfieldConfig{
			Width:     900,
			Height:    600,
			WaterLine: 470,
		},
		Bird: BirdConfig{
			StartX:        30,
			StartY:        30,
			Speed:         10,
			Scale:         1.0,
			FrameDuration: 0.25,
			Frames: []FrameConfig{
				{X: 0, Y: 0, W: 48, H: 48},
				{X: 48, Y: 0, W: 48, H: 48},
				{X: 96, Y: 0, W: 48, H: 48},
				{X: 144, Y: 0, W: 48, H: 48},
			},
			Spawn: SpawnConfig{MinX: 50, MaxX: 50, MinY: 50, MaxY: 80},
		},
		Fish: FishConfig{
			Speed:         120,
			Scale:         1.0,
			FrameDuration: 1.0,
			Frames: []FrameConfig{
				{X: 0, Y: 0, W: 48, H: 19},
			},
			Spawn: SpawnConfig{MinX: 150, MaxX: 750, MinY: 455, MaxY: 475},
		},
		Gameplay: GameplayConfig{
			WinScore:  10,
			TimeLimit: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
				Curve: CurveLinear,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				TimeReduction:   4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchFishYAML
}
