package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the presentation layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
