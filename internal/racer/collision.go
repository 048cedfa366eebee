package racer

import "github.com/vovakirdan/dodge-racer/internal/core"

// Collides reports whether two hitboxes overlap by more than minOverlap on
// both axes. Edges that merely touch or graze never count.
func Collides(a, b core.Rect, minOverlap float64) bool {
	dx, dy := a.Overlap(b)
	return dx > minOverlap && dy > minOverlap
}

// CollisionDetector tests the player against obstacles using padded hitboxes.
type CollisionDetector struct {
	Padding    float64 // Shrinks each obstacle on every side
	MinOverlap float64
}

// Hit reports whether the player hitbox collides with the obstacle.
func (d CollisionDetector) Hit(player core.Rect, o Obstacle) bool {
	return Collides(player, o.Hitbox(d.Padding), d.MinOverlap)
}
