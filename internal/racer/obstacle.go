package racer

import "github.com/vovakirdan/dodge-racer/internal/core"

// Obstacle is a block falling down the road.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the visible rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Hitbox returns the collision rectangle shrunk by padding on every side.
func (o Obstacle) Hitbox(padding float64) core.Rect {
	return o.Bounds().Inset(padding, padding)
}

// Advance moves the obstacle down by speed*dt.
func (o *Obstacle) Advance(speed, dt float64) {
	o.Y += speed * dt
}

// Gone reports whether the obstacle has fallen past the removal line.
func (o Obstacle) Gone(canvasH, margin float64) bool {
	return o.Y > canvasH+margin
}
