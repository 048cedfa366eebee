// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in canvas units.
// Canvas units are independent of the terminal: the platform scales them
// into cells when drawing.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlap returns the extent of the intersection of two rectangles on each
// axis. A non-positive value means the rectangles are apart on that axis.
func (r Rect) Overlap(other Rect) (dx, dy float64) {
	dx = min(r.Right(), other.Right()) - max(r.X, other.X)
	dy = min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	return dx, dy
}

// Inset shrinks the rectangle by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
