package racer

import (
	"math/rand"

	"github.com/vovakirdan/dodge-racer/internal/config"
)

// Spawner releases waves of obstacles on a timer and owns the live
// obstacle collection.
type Spawner struct {
	obstacles []Obstacle
	timer     float64
	rng       *rand.Rand
	cfg       config.RacerObstacles
	canvasW   float64
	margin    float64
}

// NewSpawner creates an empty spawner seeded for reproducible waves.
func NewSpawner(cfg config.RacerConfig, seed int64) *Spawner {
	return &Spawner{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg.Obstacles,
		canvasW:   cfg.Canvas.Width,
		margin:    cfg.Road.Margin,
	}
}

// Update accumulates dt and, once the timer exceeds the level's interval,
// spawns a wave of one to three obstacles. It returns how many were added.
func (s *Spawner) Update(dt float64, level int, entry LevelEntry) int {
	s.timer += dt
	if s.timer <= entry.SpawnInterval {
		return 0
	}
	s.timer = 0

	n := 1
	s.spawn()
	if s.rng.Float64() < entry.MultiSpawnChance {
		s.spawn()
		n++
	}
	if level >= s.cfg.TripleSpawnLevel && s.rng.Float64() < entry.MultiSpawnChance*s.cfg.TripleSpawnFactor {
		s.spawn()
		n++
	}
	return n
}

func (s *Spawner) spawn() {
	w := s.cfg.MinWidth + s.rng.Float64()*(s.cfg.MaxWidth-s.cfg.MinWidth)
	h := s.cfg.MinHeight + s.rng.Float64()*(s.cfg.MaxHeight-s.cfg.MinHeight)
	x := s.margin + s.rng.Float64()*(s.canvasW-2*s.margin-w)
	s.obstacles = append(s.obstacles, Obstacle{X: x, Y: s.cfg.SpawnY, Width: w, Height: h})
}

// Obstacles returns the live obstacles. The slice is owned by the spawner.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Timer returns the time accumulated since the last wave.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Clear drops every live obstacle and restarts the timer.
func (s *Spawner) Clear() {
	s.obstacles = s.obstacles[:0]
	s.timer = 0
}
