package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene objects.
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
)

// BlockPalette holds the colors alternated across the block grid.
var BlockPalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// Dim returns the darker variant of a bright color. Other colors are
// returned unchanged.
func (c Color) Dim() Color {
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return c - (ColorBrightRed - ColorRed)
	}
	if c == ColorOrange {
		return ColorYellow
	}
	return c
}
