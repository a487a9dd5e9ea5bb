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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '#', ColorCyan)
	c := s.GetCell(5, 5)
	if c.Rune != '#' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected '#' in cyan", c)
	}

	// Out of bounds writes are ignored
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(0, 100).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(s.Bounds(), 'X')
	s.Clear()

	if got := s.String(); strings.Trim(got, " \n") != "" {
		t.Errorf("After Clear, expected only spaces, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "►►", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != '►' || s.Get(x+1, 2) != '►' {
		t.Errorf("DrawTextCentered should count runes, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, tc := range corners {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}

	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
	if s.GetCell(3, 4).Color != ColorGray {
		t.Error("Box should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row)
	}

	s.Resize(15, 8)
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Colors should be preserved after enlarging")
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("Row length should be 15, got %d", len(s.Row(7)))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA", ColorDefault)
	s.DrawText(0, 1, "BBB", ColorBlue)

	if got, expected := s.String(), "AAA\nBBB"; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
