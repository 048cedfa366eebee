package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-racer/internal/config"
)

// MaxLevel is the highest difficulty level.
const MaxLevel = config.LevelCount

// LevelEntry is the tuning of a single difficulty level.
type LevelEntry struct {
	Speed            float64 // Obstacle fall speed, units per second
	SpawnInterval    float64 // Seconds between spawn waves
	MultiSpawnChance float64 // Probability of an extra obstacle per wave
}

// LevelTable holds the tuning of every level, index = level-1.
// Rows are expected to get harder from top to bottom.
type LevelTable [MaxLevel]LevelEntry

// NewLevelTable builds a table from configuration rows.
func NewLevelTable(rows []config.LevelConfig) (LevelTable, error) {
	var t LevelTable
	if len(rows) != MaxLevel {
		return t, fmt.Errorf("racer: level table needs %d rows, got %d", MaxLevel, len(rows))
	}
	for i, r := range rows {
		t[i] = LevelEntry{
			Speed:            r.Speed,
			SpawnInterval:    r.SpawnInterval,
			MultiSpawnChance: r.MultiSpawnChance,
		}
	}
	return t, nil
}

// At returns the entry for a 1-based level. Out-of-range levels are clamped
// to the first or last row.
func (t LevelTable) At(level int) LevelEntry {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i > MaxLevel-1 {
		i = MaxLevel - 1
	}
	return t[i]
}

// LevelForScore maps a score to its level: min(MaxLevel, floor(score/step)+1).
func LevelForScore(score, step float64) int {
	if score < 0 || step <= 0 {
		return 1
	}
	q := score / step
	if q >= MaxLevel-1 {
		return MaxLevel
	}
	return int(math.Floor(q)) + 1
}
