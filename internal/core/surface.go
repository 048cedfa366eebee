package core

import "image"

// Align controls the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is a fixed-size 2D drawing target measured in canvas units.
// Games draw through it without knowing how the platform displays pixels.
type Surface interface {
	// Size returns the canvas dimensions.
	Size() (w, h float64)

	// FillRect paints the rectangle with a solid color.
	FillRect(r Rect, c Color)

	// StrokeRect paints the outline of the rectangle.
	StrokeRect(r Rect, c Color)

	// DrawImage blits img scaled into the destination rectangle.
	DrawImage(img image.Image, dst Rect)

	// DrawText draws a single line of text anchored at (x, y).
	DrawText(x, y float64, text string, align Align, c Color)
}
