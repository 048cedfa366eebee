package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default Dodge Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Canvas: RacerCanvas{
			Width:  640,
			Height: 360,
		},
		Road: RacerRoad{
			Margin:       90,
			EdgePadding:  12,
			DashLength:   26,
			GapLength:    22,
			ScrollFactor: 0.6,
		},
		Player: RacerPlayer{
			Width:               90,
			Height:              160,
			Speed:               620,
			BottomOffset:        18,
			SpriteHeightRatio:   0.28,
			MaxLives:            3,
			InvulnerableSeconds: 0.8,
			Hitbox: HitboxConfig{
				InsetX: 0.18,
				InsetY: 0.12,
				Width:  0.64,
				Height: 0.78,
			},
		},
		Obstacles: RacerObstacles{
			SpawnY:            -50,
			MinWidth:          60,
			MaxWidth:          150,
			MinHeight:         24,
			MaxHeight:         50,
			DespawnMargin:     80,
			HitboxPadding:     4,
			TripleSpawnLevel:  5,
			TripleSpawnFactor: 0.35,
		},
		Scoring: RacerScoring{
			PointsPerSecond: 10,
			LevelUpScore:    120,
		},
		Collision: RacerCollision{
			MinOverlap: 8,
		},
		Timing: RacerTiming{
			MaxStep: 0.033,
		},
		Levels: []LevelConfig{
			{Speed: 220, SpawnInterval: 1.05, MultiSpawnChance: 0.00},
			{Speed: 260, SpawnInterval: 0.95, MultiSpawnChance: 0.08},
			{Speed: 310, SpawnInterval: 0.85, MultiSpawnChance: 0.12},
			{Speed: 380, SpawnInterval: 0.75, MultiSpawnChance: 0.18},
			{Speed: 460, SpawnInterval: 0.65, MultiSpawnChance: 0.25},
			{Speed: 560, SpawnInterval: 0.55, MultiSpawnChance: 0.35},
		},
	}
}
