package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "★★", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 1) != '★' || s.Get(x+1, 1) != '★' {
		t.Errorf("DrawTextCentered should count runes, got %q", s.String())
	}
}

func TestScreenFillRectAndBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("FillRect should not draw outside the rectangle")
	}

	s.Clear()
	s.DrawBox(0, 0, 4, 3, ColorWhite)
	if s.Get(0, 0) != '┌' || s.Get(3, 2) != '┘' || s.Get(1, 0) != '─' || s.Get(0, 1) != '│' {
		t.Errorf("DrawBox drew unexpected outline:\n%s", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(4, 2)

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || len(lines[0]) != 4 {
		t.Errorf("Resize(4, 2) produced %d lines of width %d", len(lines), len(lines[0]))
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative sizes should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		in       RGB
		expected Color
	}{
		{RGB{255, 0, 0}, ColorBrightRed},
		{RGB{255, 215, 0}, ColorGold},
		{RGB{250, 130, 5}, ColorOrange},
	}
	for _, tc := range tests {
		if got := Nearest(tc.in); got != tc.expected {
			t.Errorf("Nearest(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}
