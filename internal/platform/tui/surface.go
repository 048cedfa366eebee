package tui

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// CellSurface draws canvas-unit graphics into a character Screen.
// The whole canvas is stretched over the screen, so one cell covers
// canvasW/cols by canvasH/rows units.
type CellSurface struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64
}

// NewCellSurface creates a surface mapping a canvas of the given size onto
// the screen.
func NewCellSurface(screen *core.Screen, canvasW, canvasH float64) *CellSurface {
	return &CellSurface{screen: screen, canvasW: canvasW, canvasH: canvasH}
}

// Size returns the canvas dimensions.
func (s *CellSurface) Size() (float64, float64) {
	return s.canvasW, s.canvasH
}

// fillRune picks a glyph by color so that dark areas read as texture
// rather than solid blocks.
func fillRune(c core.Color) rune {
	switch c {
	case core.ColorBlack:
		return ' '
	case core.ColorDarkGray:
		return '░'
	case core.ColorGray:
		return '▒'
	default:
		return '█'
	}
}

func (s *CellSurface) col(x float64) int {
	return int(math.Round(x * float64(s.screen.Width()) / s.canvasW))
}

func (s *CellSurface) row(y float64) int {
	return int(math.Round(y * float64(s.screen.Height()) / s.canvasH))
}

// cells converts a rectangle to the half-open cell range it covers. Anything
// with a positive size covers at least one cell.
func (s *CellSurface) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = s.col(r.X), s.col(r.Right())
	y0, y1 = s.row(r.Y), s.row(r.Bottom())
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// FillRect paints the cells covered by r.
func (s *CellSurface) FillRect(r core.Rect, c core.Color) {
	x0, y0, x1, y1 := s.cells(r)
	s.screen.FillCells(x0, y0, x1, y1, fillRune(c), c)
}

// StrokeRect outlines the cells covered by r with box-drawing characters.
func (s *CellSurface) StrokeRect(r core.Rect, c core.Color) {
	x0, y0, x1, y1 := s.cells(r)
	s.screen.DrawBox(x0, y0, x1, y1, c)
}

// DrawImage scales img into the cells covered by dst and maps every pixel
// to the nearest palette color. Mostly transparent pixels are skipped.
func (s *CellSurface) DrawImage(img image.Image, dst core.Rect) {
	x0, y0, x1, y1 := s.cells(dst)
	w, h := x1-x0, y1-y0
	if img == nil || w <= 0 || h <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := scaled.RGBAAt(x, y)
			if px.A < 128 {
				continue
			}
			c := core.NearestColor(core.RGB{R: px.R, G: px.G, B: px.B})
			s.screen.SetCell(x0+x, y0+y, fillRune(c), c)
		}
	}
}

// DrawText writes text on the row containing y. With AlignCenter the text
// is centered on x.
func (s *CellSurface) DrawText(x, y float64, text string, align core.Align, c core.Color) {
	cx := s.col(x)
	cy := int(y * float64(s.screen.Height()) / s.canvasH)
	if align == core.AlignCenter {
		cx -= len([]rune(text)) / 2
	}
	s.screen.DrawText(cx, cy, text, c)
}

var _ core.Surface = (*CellSurface)(nil)
