package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadCatchFish loads the Catch the Fish configuration.
// Search order: customPath -> ~/.catchfish/configs/catchfish.yaml -> ./configs/catchfish.yaml -> embedded default
func LoadCatchFish(customPath string) (CatchFishConfig, error) {
	var cfg CatchFishConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{"configs/catchfish.yaml"}
	if userCfgPath := userConfigPath("catchfish.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCatchFishYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultCatchFishConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates an optional config file.
// Missing, unreadable or invalid files are skipped.
func tryLoad(path string) (CatchFishConfig, bool) {
	var cfg CatchFishConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catchfish", "configs", filename)
}

// Validate checks that the config can build a playable game.
func (c CatchFishConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield must have a positive size, got %vx%v",
			ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	}
	if len(c.Bird.Frames) == 0 {
		return fmt.Errorf("%w: bird needs at least one frame", ErrInvalidConfig)
	}
	if len(c.Fish.Frames) == 0 {
		return fmt.Errorf("%w: fish needs at least one frame", ErrInvalidConfig)
	}
	if c.Bird.FrameDuration <= 0 || c.Fish.FrameDuration <= 0 {
		return fmt.Errorf("%w: frame durations must be positive", ErrInvalidConfig)
	}
	if c.Bird.Speed <= 0 || c.Fish.Speed <= 0 {
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	}
	if c.Gameplay.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive, got %v", ErrInvalidConfig, c.Gameplay.TimeLimit)
	}
	if !ValidCurve(c.Difficulty.Progression.Curve) {
		return fmt.Errorf("%w: unknown progression curve %q", ErrInvalidConfig, c.Difficulty.Progression.Curve)
	}
	if c.Gameplay.WinScore < 0 {
		return fmt.Errorf("%w: win_score must not be negative, got %d", ErrInvalidConfig, c.Gameplay.WinScore)
	}
	return nil
}

// ApplyCatchFishPreset modifies the config based on a difficulty preset.
func ApplyCatchFishPreset(cfg *CatchFishConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TimeLimit *= 1.5
	case DifficultyHard:
		cfg.Gameplay.TimeLimit *= 0.75
		cfg.Bird.Speed *= 0.8
	}
}
