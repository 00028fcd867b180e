package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '●', ColorBrightRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, want '●'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %d, want ColorBrightRed", cell.Color)
	}

	// Plain Set resets the color to default
	s.Set(1, 1, 'x')
	if cell := s.GetCell(1, 1); cell.Color != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %d", cell.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(0, 0, 'A', ColorGreen)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'Z')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("Resize dimensions = %dx%d, want 8x6", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'Z' {
		t.Errorf("Resize lost content, Get(1, 1) = %q", got)
	}

	// Shrinking truncates
	s.Resize(2, 2)
	if got := s.Get(1, 1); got != 'Z' {
		t.Errorf("shrink kept in-range content, Get(1, 1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should have 1 newline, got %d", strings.Count(got, "\n"))
	}
}
