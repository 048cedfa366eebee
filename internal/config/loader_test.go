package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRacer(defaultRacerYAML)
	if err != nil {
		t.Fatalf("embedded racer.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRacerConfig()) {
		t.Errorf("embedded defaults differ from DefaultRacerConfig():\n%+v\n%+v", cfg, DefaultRacerConfig())
	}
}

func TestLoadRacerCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("player:\n  max_lives: 4\n  speed: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}

	if cfg.Player.MaxLives != 4 || cfg.Player.Speed != 500 {
		t.Errorf("overrides not applied: lives=%d speed=%v", cfg.Player.MaxLives, cfg.Player.Speed)
	}
	// Untouched values keep their defaults
	if cfg.Road.Margin != 90 || len(cfg.Levels) != LevelCount {
		t.Errorf("defaults lost: margin=%v levels=%d", cfg.Road.Margin, len(cfg.Levels))
	}
}

func TestLoadRacerMissingCustomPath(t *testing.T) {
	_, err := LoadRacer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestLoadRacerRejectsBadLevelTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("levels:\n  - { speed: 100, spawn_interval: 1, multi_spawn_chance: 0 }\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRacer(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RacerConfig)
		ok     bool
	}{
		{"defaults", func(*RacerConfig) {}, true},
		{"zero lives", func(c *RacerConfig) { c.Player.MaxLives = 0 }, false},
		{"chance above one", func(c *RacerConfig) { c.Levels[2].MultiSpawnChance = 1.5 }, false},
		{"zero spawn interval", func(c *RacerConfig) { c.Levels[0].SpawnInterval = 0 }, false},
		{"road too narrow", func(c *RacerConfig) { c.Road.Margin = 300 }, false},
		{"inverted widths", func(c *RacerConfig) { c.Obstacles.MinWidth = 200 }, false},
		{"no max step", func(c *RacerConfig) { c.Timing.MaxStep = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 3},
		{DifficultyHard, 1},
		{"", 3}, // keeps configured value
	}

	for _, tc := range tests {
		cfg := DefaultRacerConfig()
		ApplyRacerPreset(&cfg, tc.preset)
		if cfg.Player.MaxLives != tc.lives {
			t.Errorf("preset %q: lives = %d, expected %d", tc.preset, cfg.Player.MaxLives, tc.lives)
		}
	}

	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
}
