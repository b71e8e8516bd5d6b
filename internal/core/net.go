package core

import "github.com/vovakirdan/pyraminx/internal/pyraminx"

// Net dimensions in cells: three faces side by side, the fourth below.
const (
	NetWidth  = 17
	NetHeight = 6
)

// netFaces are the faces drawn apex up, left to right.
var netFaces = [3]pyraminx.Axis{pyraminx.AxisY, pyraminx.AxisZ, pyraminx.AxisX}

// DrawNet draws the unfolded puzzle with its top-left corner at (x, y).
// With letters set every sticker shows its color initial, otherwise a
// triangle glyph pointing the way the sticker does.
func DrawNet(s *Screen, x, y int, p *pyraminx.Puzzle, letters bool) {
	for i, a := range netFaces {
		for r := range 3 {
			drawFaceRow(s, x+i*6+2-r, y+r, p, a, r, false, letters)
		}
	}
	for r := range 3 {
		drawFaceRow(s, x+6+2-r, y+3+2-r, p, pyraminx.AxisW, r, true, letters)
	}
}

// drawFaceRow draws row r (0 = apex) of face a starting at (x, y).
func drawFaceRow(s *Screen, x, y int, p *pyraminx.Puzzle, a pyraminx.Axis, r int, down, letters bool) {
	stickers := pyraminx.FaceStickers(a)
	start, n := r*r, 2*r+1
	for j, st := range stickers[start : start+n] {
		pc, _ := p.At(st.Coord)
		c := pc.Face(st.Axis)

		var ch rune
		switch {
		case letters:
			ch = []rune(c.String())[0]
		case (j%2 == 0) != down:
			ch = '▲'
		default:
			ch = '▼'
		}
		s.SetCell(x+j, y, Cell{Rune: ch, Color: StickerColor(c)})
	}
}
