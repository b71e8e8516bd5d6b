package pyraminx

import "strings"

// Piece is one rotatable unit of the puzzle with a color slot per axis.
// Pieces are plain values; copying a Piece copies its colors.
type Piece [AxisCount]Color

// pieceCycles holds, per axis, the three other slots in positive rotation
// order: a positive turn sets p<-q, q<-r, r<-p.
var pieceCycles = [AxisCount][3]Axis{
	AxisW: {AxisX, AxisY, AxisZ},
	AxisX: {AxisW, AxisZ, AxisY},
	AxisY: {AxisW, AxisX, AxisZ},
	AxisZ: {AxisW, AxisY, AxisX},
}

// NewPiece creates a piece from its four slot colors in W, X, Y, Z order.
func NewPiece(w, x, y, z Color) Piece {
	return Piece{w, x, y, z}
}

// Face returns the color in the slot of axis a.
func (p Piece) Face(a Axis) Color {
	return p[a]
}

// SetFace sets the color in the slot of axis a.
func (p *Piece) SetFace(a Axis, c Color) {
	p[a] = c
}

// Rotate cycles the three slots that are not a's own slot.
// Positive and negative rotations are inverses; DirNone does nothing.
func (p *Piece) Rotate(a Axis, d Direction) {
	c := pieceCycles[a]
	switch d {
	case DirPos:
		p[c[0]], p[c[1]], p[c[2]] = p[c[1]], p[c[2]], p[c[0]]
	case DirNeg:
		p[c[0]], p[c[1]], p[c[2]] = p[c[2]], p[c[0]], p[c[1]]
	}
}

// Colors returns the visible (non-Undefined) colors in slot order.
func (p Piece) Colors() []Color {
	out := make([]Color, 0, AxisCount)
	for _, c := range p {
		if c != Undefined {
			out = append(out, c)
		}
	}
	return out
}

// MissingColors returns the real colors that appear in no slot,
// in the order of Colors.
func (p Piece) MissingColors() []Color {
	var out []Color
	for _, c := range Colors {
		if !p.has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (p Piece) has(c Color) bool {
	for _, f := range p {
		if f == c {
			return true
		}
	}
	return false
}

// String renders the piece as "[WXYZ]", e.g. "[.BOG]".
func (p Piece) String() string {
	var sb strings.Builder
	sb.Grow(AxisCount + 2)
	sb.WriteByte('[')
	for _, c := range p {
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
