package core

import (
	"strings"
	"testing"
)

// lines builds the expected String() of a screen from its rows.
func lines(rows ...string) string {
	return strings.Join(rows, "\n")
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		size [2]int
		draw func(s *Screen)
		want string
	}{
		{
			name: "blank",
			size: [2]int{3, 2},
			draw: func(*Screen) {},
			want: lines("   ", "   "),
		},
		{
			name: "text clipped at the right edge",
			size: [2]int{6, 1},
			draw: func(s *Screen) { s.DrawText(3, 0, "NEXT") },
			want: lines("   NEX"),
		},
		{
			name: "out of bounds writes are ignored",
			size: [2]int{2, 2},
			draw: func(s *Screen) {
				s.Set(-1, 0, 'A')
				s.Set(2, 0, 'A')
				s.Set(0, -1, 'A')
				s.Set(0, 2, 'A')
			},
			want: lines("  ", "  "),
		},
		{
			name: "centered",
			size: [2]int{8, 1},
			draw: func(s *Screen) { s.DrawTextCentered(0, "GO") },
			want: lines("   GO   "),
		},
		{
			name: "rect",
			size: [2]int{4, 3},
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 2, 2), '█', ColorGray) },
			want: lines("    ", " ██ ", " ██ "),
		},
		{
			name: "box",
			size: [2]int{5, 4},
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 4), ColorDefault) },
			want: lines("┌───┐", "│   │", "│   │", "└───┘"),
		},
		{
			name: "fill then text",
			size: [2]int{4, 2},
			draw: func(s *Screen) {
				s.Fill('·')
				s.DrawText(0, 1, "ab")
			},
			want: lines("····", "ab··"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.size[0], tt.size[1])
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenGetOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	s.Fill('#')
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if r := s.Get(p[0], p[1]); r != ' ' {
			t.Errorf("Get(%d, %d) = %q, want space", p[0], p[1], r)
		}
	}
	if row := s.Row(5); row != "   " {
		t.Errorf("Row(5) = %q, want blanks", row)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "SCORE")
	s.DrawText(0, 2, "LINES")

	s.Resize(3, 2)
	if got := s.String(); got != lines("SCO", "   ") {
		t.Errorf("after shrinking got %q", got)
	}

	s.Resize(5, 3)
	if got := s.Row(0); got != "SCO  " {
		t.Errorf("after growing Row(0) = %q", got)
	}
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}

	s.Resize(-4, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Error("negative sizes should clamp to an empty screen")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(10, 3)
	tint := RGB(85, 255, 170)

	s.SetColor(1, 1, '█', tint)
	if cell := s.GetCell(1, 1); cell.Rune != '█' || cell.Color != tint {
		t.Errorf("GetCell(1, 1) = %+v, want '█' in %v", cell, tint)
	}

	s.DrawTextColor(0, 0, "LEVEL", ColorYellow)
	if c := s.GetCell(4, 0).Color; c != ColorYellow {
		t.Errorf("DrawTextColor left %v on the last rune", c)
	}

	s.DrawRect(NewRect(0, 2, 2, 1), '░', ColorDarkGray)
	if c := s.GetCell(1, 2).Color; c != ColorDarkGray {
		t.Errorf("DrawRect colour = %v, want ColorDarkGray", c)
	}

	if s.GetCell(-1, 0) != (Cell{Rune: ' '}) {
		t.Error("out of bounds GetCell should return a blank cell")
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colours")
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{RGB(85, 255, 170), "#55ffaa"},
		{RGB(0, 0, 0), "#000000"},
	}
	for _, tt := range tests {
		if got := tt.c.Code(); got != tt.want {
			t.Errorf("Color(%d).Code() = %q, want %q", tt.c, got, tt.want)
		}
	}

	if ColorGray.IsRGB() || !RGB(1, 2, 3).IsRGB() {
		t.Error("IsRGB should only be true for RGB colours")
	}
}
