// Package config provides YAML-based game configuration loading and
// difficulty presets for the racer.
package config

// RacerConfig contains all tuning for Dodge Racer. Distances are canvas
// units, times are seconds, speeds are units per second.
type RacerConfig struct {
	Canvas    RacerCanvas    `yaml:"canvas"`
	Road      RacerRoad      `yaml:"road"`
	Player    RacerPlayer    `yaml:"player"`
	Obstacles RacerObstacles `yaml:"obstacles"`
	Scoring   RacerScoring   `yaml:"scoring"`
	Collision RacerCollision `yaml:"collision"`
	Timing    RacerTiming    `yaml:"timing"`
	Levels    []LevelConfig  `yaml:"levels"`
}

// RacerCanvas is the logical drawing area.
type RacerCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacerRoad defines the road band and its center-line pattern.
type RacerRoad struct {
	Margin       float64 `yaml:"margin"`        // Space left and right of the road
	EdgePadding  float64 `yaml:"edge_padding"`  // Extra gap the car keeps from the road edge
	DashLength   float64 `yaml:"dash_length"`   // Center line dash length
	GapLength    float64 `yaml:"gap_length"`    // Gap between dashes
	ScrollFactor float64 `yaml:"scroll_factor"` // Road scroll speed relative to obstacles
}

// RacerPlayer defines the car.
type RacerPlayer struct {
	Width               float64      `yaml:"width"`  // Size before the sprite is known
	Height              float64      `yaml:"height"` // Size before the sprite is known
	Speed               float64      `yaml:"speed"`
	BottomOffset        float64      `yaml:"bottom_offset"`        // Gap between car and canvas bottom
	SpriteHeightRatio   float64      `yaml:"sprite_height_ratio"`  // Car height as a share of canvas height once the sprite loads
	MaxLives            int          `yaml:"max_lives"`
	InvulnerableSeconds float64      `yaml:"invulnerable_seconds"` // Grace period after a hit
	Hitbox              HitboxConfig `yaml:"hitbox"`
}

// HitboxConfig describes the player hitbox relative to the sprite size.
type HitboxConfig struct {
	InsetX float64 `yaml:"inset_x"`
	InsetY float64 `yaml:"inset_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacerObstacles defines obstacle geometry and spawn layering.
type RacerObstacles struct {
	SpawnY            float64 `yaml:"spawn_y"`
	MinWidth          float64 `yaml:"min_width"`
	MaxWidth          float64 `yaml:"max_width"`
	MinHeight         float64 `yaml:"min_height"`
	MaxHeight         float64 `yaml:"max_height"`
	DespawnMargin     float64 `yaml:"despawn_margin"` // Distance below the canvas before removal
	HitboxPadding     float64 `yaml:"hitbox_padding"`
	TripleSpawnLevel  int     `yaml:"triple_spawn_level"`
	TripleSpawnFactor float64 `yaml:"triple_spawn_factor"`
}

// RacerScoring defines score rate and level thresholds.
type RacerScoring struct {
	PointsPerSecond float64 `yaml:"points_per_second"`
	LevelUpScore    float64 `yaml:"level_up_score"`
}

// RacerCollision defines collision tolerance.
type RacerCollision struct {
	MinOverlap float64 `yaml:"min_overlap"`
}

// RacerTiming defines simulation step limits.
type RacerTiming struct {
	MaxStep float64 `yaml:"max_step"` // Upper bound of a single dt
}

// LevelConfig is one row of the difficulty table.
type LevelConfig struct {
	Speed            float64 `yaml:"speed"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	MultiSpawnChance float64 `yaml:"multi_spawn_chance"`
}

// LevelCount is the number of difficulty levels.
const LevelCount = 6

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
