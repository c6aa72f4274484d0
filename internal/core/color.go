// Package core provides fundamental types shared by the game and the platform layer.
// It contains no terminal dependencies to keep game logic pure and testable.
package core

// Color represents a foreground color for a glyph.
// Values map onto the basic ANSI palette.
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
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"gray":    ColorGray,
}

// ColorByName looks up a color by its lowercase name.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// String returns the color name.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}
