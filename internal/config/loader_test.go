package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg CatchFishConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultCatchFishConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultCatchFishConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded YAML should validate, got %v", err)
	}
}

func TestLoadCatchFishFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCatchFish("")
	if err != nil {
		t.Fatalf("LoadCatchFish() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 10 {
		t.Errorf("WinScore = %d, expected 10", cfg.Gameplay.WinScore)
	}
	if len(cfg.Bird.Frames) != 4 {
		t.Errorf("bird frames = %d, expected 4", len(cfg.Bird.Frames))
	}
}

func TestLoadCatchFishUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultCatchFishConfig()
	cfg.Gameplay.TimeLimit = 6
	writeConfig(t, filepath.Join(home, ".catchfish", "configs", "catchfish.yaml"), cfg)

	loaded, err := LoadCatchFish("")
	if err != nil {
		t.Fatalf("LoadCatchFish() failed: %v", err)
	}
	if loaded.Gameplay.TimeLimit != 6 {
		t.Errorf("TimeLimit = %v, expected user override 6", loaded.Gameplay.TimeLimit)
	}
}

func TestLoadCatchFishSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultCatchFishConfig()
	cfg.Bird.Frames = nil
	writeConfig(t, filepath.Join(home, ".catchfish", "configs", "catchfish.yaml"), cfg)

	loaded, err := LoadCatchFish("")
	if err != nil {
		t.Fatalf("LoadCatchFish() failed: %v", err)
	}
	if len(loaded.Bird.Frames) != 4 {
		t.Errorf("invalid user config should be skipped, got %d bird frames", len(loaded.Bird.Frames))
	}
}

func TestLoadCatchFishCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	cfg := DefaultCatchFishConfig()
	cfg.Fish.Speed = 300
	writeConfig(t, path, cfg)

	loaded, err := LoadCatchFish(path)
	if err != nil {
		t.Fatalf("LoadCatchFish() failed: %v", err)
	}
	if loaded.Fish.Speed != 300 {
		t.Errorf("Fish.Speed = %v, expected 300", loaded.Fish.Speed)
	}
}

func TestLoadCatchFishCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatchFish(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCatchFish() should fail for a missing custom file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("bird: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatchFish(broken); err == nil {
		t.Error("LoadCatchFish() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	cfg := DefaultCatchFishConfig()
	cfg.Fish.FrameDuration = 0
	writeConfig(t, invalid, cfg)
	_, err := LoadCatchFish(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadCatchFish() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchFishConfig)
	}{
		{"zero playfield", func(c *CatchFishConfig) { c.Playfield.Width = 0 }},
		{"no bird frames", func(c *CatchFishConfig) { c.Bird.Frames = nil }},
		{"no fish frames", func(c *CatchFishConfig) { c.Fish.Frames = nil }},
		{"zero bird frame duration", func(c *CatchFishConfig) { c.Bird.FrameDuration = 0 }},
		{"negative fish speed", func(c *CatchFishConfig) { c.Fish.Speed = -1 }},
		{"zero time limit", func(c *CatchFishConfig) { c.Gameplay.TimeLimit = 0 }},
		{"negative win score", func(c *CatchFishConfig) { c.Gameplay.WinScore = -1 }},
		{"unknown curve", func(c *CatchFishConfig) { c.Difficulty.Progression.Curve = "bounce" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchFishConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyCatchFishPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		timeLimit    float64
		birdSpeed    float64
	}{
		{DifficultyEasy, true, 0.0, 15, 10},
		{DifficultyNormal, true, 0.3, 10, 10},
		{DifficultyHard, true, 0.7, 7.5, 8},
		{DifficultyFixed, false, 0.0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatchFishConfig()
			ApplyCatchFishPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Gameplay.TimeLimit != tc.timeLimit {
				t.Errorf("TimeLimit = %v, expected %v", cfg.Gameplay.TimeLimit, tc.timeLimit)
			}
			if cfg.Bird.Speed != tc.birdSpeed {
				t.Errorf("Bird.Speed = %v, expected %v", cfg.Bird.Speed, tc.birdSpeed)
			}
		})
	}
}

func writeConfig(t *testing.T, path string, cfg CatchFishConfig) {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}
