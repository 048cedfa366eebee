package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid racer config")

// ParsePreset converts a CLI value to a preset. The empty string keeps the
// configured values.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// LivesForPreset returns the number of lives a preset grants, or 0 if the
// preset does not change lives.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
// Presets only change how many hits a run survives; the level table and
// its pacing stay the same for everyone so scores remain comparable.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if lives := LivesForPreset(preset); lives > 0 {
		cfg.Player.MaxLives = lives
	}
}

// Validate checks that the configuration describes a playable game.
func (c RacerConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must have a positive size", ErrInvalidConfig)
	}
	if c.Road.Margin < 0 || c.Road.EdgePadding < 0 {
		return fmt.Errorf("%w: road margin and edge padding must not be negative", ErrInvalidConfig)
	}
	if c.Road.DashLength+c.Road.GapLength <= 0 {
		return fmt.Errorf("%w: road dash pattern must have a positive length", ErrInvalidConfig)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player size and speed must be positive", ErrInvalidConfig)
	}
	if c.Player.MaxLives < 1 {
		return fmt.Errorf("%w: max_lives must be at least 1", ErrInvalidConfig)
	}
	if c.Player.InvulnerableSeconds < 0 {
		return fmt.Errorf("%w: invulnerable_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		return fmt.Errorf("%w: obstacle widths must satisfy 0 < min <= max", ErrInvalidConfig)
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		return fmt.Errorf("%w: obstacle heights must satisfy 0 < min <= max", ErrInvalidConfig)
	}
	if c.Canvas.Width-2*c.Road.Margin < c.Obstacles.MaxWidth {
		return fmt.Errorf("%w: road is narrower than the widest obstacle", ErrInvalidConfig)
	}
	if c.Scoring.PointsPerSecond <= 0 || c.Scoring.LevelUpScore <= 0 {
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalidConfig)
	}
	if c.Timing.MaxStep <= 0 {
		return fmt.Errorf("%w: max_step must be positive", ErrInvalidConfig)
	}
	if len(c.Levels) != LevelCount {
		return fmt.Errorf("%w: expected %d levels, got %d", ErrInvalidConfig, LevelCount, len(c.Levels))
	}
	for i, lv := range c.Levels {
		if lv.Speed <= 0 || lv.SpawnInterval <= 0 {
			return fmt.Errorf("%w: level %d needs positive speed and spawn_interval", ErrInvalidConfig, i+1)
		}
		if lv.MultiSpawnChance < 0 || lv.MultiSpawnChance > 1 {
			return fmt.Errorf("%w: level %d multi_spawn_chance must be in [0,1]", ErrInvalidConfig, i+1)
		}
	}
	return nil
}
