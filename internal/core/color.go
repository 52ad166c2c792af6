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
	ColorGold
	ColorPurple
)

// RGB is a 24-bit color used by the simulation for costumes and particles.
// Hosts map it to whatever their output supports.
type RGB struct {
	R, G, B uint8
}

// paletteRGB is the approximate RGB value of each terminal palette entry.
var paletteRGB = map[Color]RGB{
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
	ColorGold:          {255, 215, 0},
	ColorPurple:        {147, 112, 219},
}

// Nearest returns the palette color closest to c by squared RGB distance.
func Nearest(c RGB) Color {
	best := ColorDefault
	bestDist := -1
	for col, p := range paletteRGB {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		// Ties resolve to the lower palette index so the result is stable
		// regardless of map iteration order.
		if bestDist < 0 || d < bestDist || (d == bestDist && col < best) {
			best = col
			bestDist = d
		}
	}
	return best
}
