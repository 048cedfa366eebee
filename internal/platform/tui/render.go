package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-racer/internal/core"
)

// ansiCodes maps palette colors to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "237",
	core.ColorBlack:         "232",
}

var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func cellStyle(c core.Color) lipgloss.Style {
	if s, ok := cellStyles[c]; ok {
		return s
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells on a row gets one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run.Reset()
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(cellStyle(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(cellStyle(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
