package core

import "strings"

// Cell is a single character cell in the screen buffer.
// Layer records the draw layer that produced the cell, so that actors
// with higher layers are not overdrawn by lower ones.
type Cell struct {
	Rune  rune
	Color Color
	Layer int
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: the presentation layer
// draws with simple rune operations and the platform handles display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, discarding current content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces and resets layers.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault, Layer: -1}
		}
	}
}

// Set places a rune at the given position regardless of layer.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Layer: s.cells[y][x].Layer}
}

// SetLayer places a rune at the given position if the draw layer is at
// least the layer of whatever already occupies the cell. This is how
// overlapping actors resolve their stacking order.
func (s *Screen) SetLayer(x, y int, r rune, c Color, layer int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	if layer < s.cells[y][x].Layer {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Layer: layer}
}

// GetCell returns the cell at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault, Layer: -1}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), ignoring
// layers. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		s.Set(x+i, y, r, c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, c)
	}
}

// String converts the screen buffer to a plain string without styling.
// Used by tests and the headless simulator.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range runes {
		runes[x] = s.cells[y][x].Rune
	}
	return string(runes)
}
