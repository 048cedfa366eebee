package racer

import (
	"math"

	"github.com/vovakirdan/dodge-racer/internal/config"
	"github.com/vovakirdan/dodge-racer/internal/core"
)

// Player is the car steered by the user.
type Player struct {
	X, Y          float64 // Top-left position
	Width, Height float64
	Speed         float64 // Horizontal speed, units per second
	Lives         int
	MaxLives      int
	Invulnerable  float64 // Seconds of remaining hit immunity

	hitbox       config.HitboxConfig
	margin       float64 // Road margin
	edgePadding  float64 // Gap kept from the road edge
	bottomOffset float64
}

// NewPlayer creates a car of the given size with full lives, parked at the
// bottom center of the canvas.
func NewPlayer(cfg config.RacerConfig, width, height float64) *Player {
	p := &Player{
		Width:        width,
		Height:       height,
		Speed:        cfg.Player.Speed,
		Lives:        cfg.Player.MaxLives,
		MaxLives:     cfg.Player.MaxLives,
		hitbox:       cfg.Player.Hitbox,
		margin:       cfg.Road.Margin,
		edgePadding:  cfg.Road.EdgePadding,
		bottomOffset: cfg.Player.BottomOffset,
	}
	p.Park(cfg.Canvas.Width, cfg.Canvas.Height)
	return p
}

// Park centers the car horizontally and rests it above the bottom edge.
func (p *Player) Park(canvasW, canvasH float64) {
	p.X = canvasW/2 - p.Width/2
	p.Y = canvasH - p.Height - p.bottomOffset
}

// Resize changes the car dimensions, keeping its horizontal center.
func (p *Player) Resize(width, height, canvasW, canvasH float64) {
	cx := p.X + p.Width/2
	p.Width = width
	p.Height = height
	p.X = cx - width/2
	p.Y = canvasH - height - p.bottomOffset
	p.clamp(canvasW)
}

// CoolDown counts the invulnerability window down toward zero.
func (p *Player) CoolDown(dt float64) {
	p.Invulnerable = math.Max(0, p.Invulnerable-dt)
}

// Update steers the car and keeps it on the road.
func (p *Player) Update(dt, canvasW float64, in InputState) {
	p.X += in.Direction() * p.Speed * dt
	p.clamp(canvasW)
}

// MinX and MaxX bound the car's left edge.
func (p *Player) MinX() float64 {
	return p.margin + p.edgePadding
}

func (p *Player) MaxX(canvasW float64) float64 {
	return canvasW - p.margin - p.Width - p.edgePadding
}

func (p *Player) clamp(canvasW float64) {
	// MaxX is checked last so a car wider than the road hugs the right edge
	// instead of oscillating.
	p.X = math.Min(p.MaxX(canvasW), math.Max(p.MinX(), p.X))
}

// TakeDamage removes one life, never going below zero.
func (p *Player) TakeDamage() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// IsAlive reports whether the car has lives left.
func (p *Player) IsAlive() bool {
	return p.Lives > 0
}

// Bounds returns the visible rectangle of the car.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Hitbox returns the collision rectangle, smaller than the sprite so that
// near misses stay near misses.
func (p *Player) Hitbox() core.Rect {
	return core.NewRect(
		p.X+p.Width*p.hitbox.InsetX,
		p.Y+p.Height*p.hitbox.InsetY,
		p.Width*p.hitbox.Width,
		p.Height*p.hitbox.Height,
	)
}
