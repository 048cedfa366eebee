package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBlack
)

// RGB is an approximate 8-bit per channel value for a palette color.
type RGB struct {
	R, G, B uint8
}

// palette holds the approximate xterm values of each Color, used to map
// image pixels onto the terminal palette.
var palette = map[Color]RGB{
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorDarkGray:      {58, 58, 58},
	ColorBlack:         {8, 8, 8},
}

// NearestColor returns the palette color closest to the given RGB value.
func NearestColor(c RGB) Color {
	best := ColorWhite
	bestDist := -1
	for col, p := range palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		// Ties resolve to the lower color value so the result is stable
		// regardless of map iteration order.
		if bestDist < 0 || d < bestDist || (d == bestDist && col < best) {
			best = col
			bestDist = d
		}
	}
	return best
}
