package core

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// trimmedRows returns the screen rows without trailing spaces.
func trimmedRows(s *Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}

func TestDrawNetMatchesString(t *testing.T) {
	p := pyraminx.Solved()
	if err := p.ExecuteTurns("w+x-y+", false); err != nil {
		t.Fatal(err)
	}

	s := NewScreen(NetWidth, NetHeight)
	DrawNet(s, 0, 0, &p, true)

	if got, want := trimmedRows(s), p.String(); got != want {
		t.Errorf("DrawNet letters =\n%s\nexpected\n%s", got, want)
	}
}

func TestDrawNetColors(t *testing.T) {
	p := pyraminx.Solved()
	s := NewScreen(NetWidth+2, NetHeight+2)
	DrawNet(s, 1, 1, &p, false)

	tests := []struct {
		x, y  int
		rune  rune
		color Color
	}{
		{3, 1, '▲', ColorOrange}, // apex of the Y face
		{3, 2, '▼', ColorOrange}, // middle of its second row
		{9, 3, '▲', ColorGreen},  // Z face base
		{15, 3, '▲', ColorBlue},  // X face base
		{7, 4, '▼', ColorYellow}, // first sticker of the W face base
		{9, 6, '▼', ColorYellow}, // W face apex, pointing down
	}

	for _, tc := range tests {
		got := s.GetCell(tc.x, tc.y)
		if got.Rune != tc.rune || got.Color != tc.color {
			t.Errorf("cell (%d, %d) = %q/%v, expected %q/%v", tc.x, tc.y, got.Rune, got.Color, tc.rune, tc.color)
		}
	}

	// Offset respected: row and column 0 untouched
	if s.Row(0) != strings.Repeat(" ", NetWidth+2) {
		t.Errorf("row 0 should be blank, got %q", s.Row(0))
	}
}

func TestDrawNetEmptyPuzzle(t *testing.T) {
	p := pyraminx.New()
	s := NewScreen(NetWidth, NetHeight)
	DrawNet(s, 0, 0, &p, true)

	if got := s.GetCell(2, 0); got.Rune != '.' || got.Color != ColorGray {
		t.Errorf("empty sticker = %q/%v, expected gray '.'", got.Rune, got.Color)
	}
}

func TestStickerColor(t *testing.T) {
	tests := []struct {
		in   pyraminx.Color
		want Color
	}{
		{pyraminx.Yellow, ColorYellow},
		{pyraminx.Blue, ColorBlue},
		{pyraminx.Green, ColorGreen},
		{pyraminx.Orange, ColorOrange},
		{pyraminx.Undefined, ColorGray},
	}
	for _, tc := range tests {
		if got := StickerColor(tc.in); got != tc.want {
			t.Errorf("StickerColor(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
