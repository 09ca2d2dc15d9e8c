package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	// Out of bounds writes are silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(6, 3)

	s.SetColored(2, 1, 'o', ColorGreen)
	cell := s.GetCell(2, 1)
	if cell.Rune != 'o' || cell.Color != ColorGreen {
		t.Errorf("GetCell(2, 1) = %+v, expected {o green}", cell)
	}

	// Plain Set resets the color to default
	s.Set(2, 1, 'o')
	if got := s.GetCell(2, 1).Color; got != ColorDefault {
		t.Errorf("color after Set = %v, expected ColorDefault", got)
	}

	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Get(2, 2) after shrink = %q, expected 'A'", got)
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d, expected 5x3", s.Width(), s.Height())
	}

	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Get(2, 2) after grow = %q, expected 'A'", got)
	}
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("Get(9, 4) = %q, expected space (content was clipped)", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); !strings.HasSuffix(got, "ab") {
		t.Errorf("Row(0) = %q, expected to end with clipped 'ab'", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("Get(4, 1) = %q, expected 'a'", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, expected '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, expected '│'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
