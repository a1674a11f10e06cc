package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(3,2) = %+v, want X/red", cell)
	}

	// Out of bounds is a no-op / space.
	s.Set(-1, 0, 'Y', ColorDefault)
	s.Set(10, 0, 'Y', ColorDefault)
	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(99, 99).Rune != ' ' {
		t.Error("out-of-bounds GetCell should return a blank cell")
	}
}

func TestScreenLayerOrdering(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetLayer(1, 1, 'a', ColorDefault, 500)
	s.SetLayer(1, 1, 'b', ColorDefault, 495) // lower layer must not overdraw
	if got := s.GetCell(1, 1).Rune; got != 'a' {
		t.Errorf("lower layer overdrew: got %q, want 'a'", got)
	}

	s.SetLayer(1, 1, 'c', ColorDefault, 500) // equal layer draws last-wins
	if got := s.GetCell(1, 1).Rune; got != 'c' {
		t.Errorf("equal layer should win: got %q, want 'c'", got)
	}

	s.SetLayer(1, 1, 'd', ColorDefault, 501)
	if got := s.GetCell(1, 1).Rune; got != 'd' {
		t.Errorf("higher layer should win: got %q, want 'd'", got)
	}
}

func TestScreenClearResetsLayers(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetLayer(0, 0, 'x', ColorDefault, 500)
	s.Clear()
	s.SetLayer(0, 0, 'y', ColorDefault, 0)
	if got := s.GetCell(0, 0).Rune; got != 'y' {
		t.Errorf("Clear should reset layers: got %q, want 'y'", got)
	}
}

func TestScreenDrawTextAndString(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(0, 0, "Score: 3", ColorWhite)
	if s.Row(0) != "Score: 3" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d, want 6x3", s.Width(), s.Height())
	}
}
