// Package config provides YAML-based game configuration loading and
// difficulty management for Catch the Fish.
package config

// CatchFishConfig contains all configuration for Catch the Fish.
type CatchFishConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Bird       BirdConfig       `yaml:"bird"`
	Fish       FishConfig       `yaml:"fish"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig is the size of the simulated world in pixels.
type PlayfieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	WaterLine float64 `yaml:"water_line"` // Y where the water starts (renderer only)
}

// FrameConfig is one atlas sub-rectangle of a sprite sheet.
type FrameConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SpawnConfig is a rectangular area an entity respawns in.
type SpawnConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// BirdConfig defines the player-controlled bird.
type BirdConfig struct {
	StartX        float64       `yaml:"start_x"`
	StartY        float64       `yaml:"start_y"`
	Speed         float64       `yaml:"speed"` // Pixels per frame
	Scale         float64       `yaml:"scale"`
	FrameDuration float64       `yaml:"frame_duration"`
	Frames        []FrameConfig `yaml:"frames"`
	Spawn         SpawnConfig   `yaml:"spawn"`
}

// FishConfig defines the fish the bird hunts.
type FishConfig struct {
	Speed         float64       `yaml:"speed"` // Pixels per second
	Scale         float64       `yaml:"scale"`
	FrameDuration float64       `yaml:"frame_duration"`
	Frames        []FrameConfig `yaml:"frames"`
	Spawn         SpawnConfig   `yaml:"spawn"`
}

// GameplayConfig defines scoring rules.
type GameplayConfig struct {
	WinScore  int     `yaml:"win_score"`  // 0 disables winning (endless)
	TimeLimit float64 `yaml:"time_limit"` // Seconds to catch a fish before losing a point
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
	Curve string `yaml:"curve"`  // linear, ease_in, ease_out or ease_in_out
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to fish speed multiplier at max difficulty
	TimeReduction   float64 `yaml:"time_reduction"`   // Seconds removed from the time limit at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
