package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// Palette
const (
	colorBackground = core.ColorBlack
	colorAsphalt    = core.ColorDarkGray
	colorBorder     = core.ColorRed
	colorSideLine   = core.ColorGray
	colorDash       = core.ColorWhite
	colorObstacle   = core.ColorGray
	colorCar        = core.ColorBrightRed
	colorHUD        = core.ColorWhite
	colorBanner     = core.ColorBrightYellow
)

const (
	sideLineInset = 16 // Distance of the faint side lines from the borders
	dashWidth     = 4
	hudX, hudY    = 14, 22
	blinkPeriod   = 0.1 // Seconds per on/off phase of the hit blink
)

// Render draws the current frame: background, road, obstacles, car, HUD
// and the phase banner. It never changes game state.
func (s *Session) Render(dst core.Surface) {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	dst.FillRect(core.NewRect(0, 0, w, h), colorBackground)
	s.renderRoad(dst, w, h)

	for _, o := range s.spawner.Obstacles() {
		dst.FillRect(o.Bounds(), colorObstacle)
		dst.StrokeRect(o.Bounds(), colorBorder)
	}

	s.renderCar(dst)

	dst.DrawText(hudX, hudY, fmt.Sprintf("LEVEL %d/%d", s.level, MaxLevel), core.AlignLeft, colorHUD)
	dst.DrawText(w-hudX-60, hudY, fmt.Sprintf("LIVES %d", s.player.Lives), core.AlignLeft, colorHUD)

	switch s.phase {
	case core.PhaseMenu:
		dst.DrawText(w/2, h/2, "Press SPACE to play", core.AlignCenter, colorBanner)
	case core.PhaseGameOver:
		dst.DrawText(w/2, h/2, "GAME OVER", core.AlignCenter, colorBanner)
		dst.DrawText(w/2, h/2+24, fmt.Sprintf("Score %d  Best %d  SPACE to retry", s.Score(), s.best), core.AlignCenter, colorHUD)
	}
}

func (s *Session) renderRoad(dst core.Surface, w, h float64) {
	margin := s.cfg.Road.Margin
	roadW := w - 2*margin
	road := core.NewRect(margin, 0, roadW, h)

	dst.FillRect(road, colorAsphalt)
	dst.StrokeRect(road, colorBorder)

	dst.FillRect(core.NewRect(margin+sideLineInset, 0, 1, h), colorSideLine)
	dst.FillRect(core.NewRect(margin+roadW-sideLineInset-1, 0, 1, h), colorSideLine)

	cx := w / 2
	for _, span := range s.road.Dashes(h) {
		dst.FillRect(core.NewRect(cx-dashWidth/2, span[0], dashWidth, span[1]-span[0]), colorDash)
	}
}

func (s *Session) renderCar(dst core.Surface) {
	p := s.player
	if p.Invulnerable > 0 && s.phase == core.PhasePlaying {
		if int(math.Floor(p.Invulnerable/blinkPeriod))%2 == 1 {
			return
		}
	}
	if s.sprite != nil {
		dst.DrawImage(s.sprite, p.Bounds())
		return
	}
	dst.FillRect(p.Bounds(), colorCar)
}
