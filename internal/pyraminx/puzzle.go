package pyraminx

import "strings"

// Coord addresses a slot of the puzzle grid by its four layer
// coordinates (w, x, y, z), each in 0..2.
type Coord [AxisCount]int

// TipCoord returns the address of the tip on axis a (a's coordinate is 2).
func TipCoord(a Axis) Coord {
	var c Coord
	c[a] = 2
	return c
}

// CenterCoord returns the address of the center on axis a (a's coordinate is 1).
func CenterCoord(a Axis) Coord {
	var c Coord
	c[a] = 1
	return c
}

// EdgeCoord returns the address of the edge between axes a and b.
func EdgeCoord(a, b Axis) Coord {
	var c Coord
	c[a] = 1
	c[b] = 1
	return c
}

// Edge slots in storage and serialization order.
const (
	edgeWX = iota
	edgeWY
	edgeWZ
	edgeXY
	edgeXZ
	edgeYZ
	edgeCount
)

// edgeAxes lists the two axes of each edge slot.
var edgeAxes = [edgeCount][2]Axis{
	edgeWX: {AxisW, AxisX},
	edgeWY: {AxisW, AxisY},
	edgeWZ: {AxisW, AxisZ},
	edgeXY: {AxisX, AxisY},
	edgeXZ: {AxisX, AxisZ},
	edgeYZ: {AxisY, AxisZ},
}

// edgeIndex returns the edge slot between a and b, or -1 when a == b.
func edgeIndex(a, b Axis) int {
	if a > b {
		a, b = b, a
	}
	for i, e := range edgeAxes {
		if e[0] == a && e[1] == b {
			return i
		}
	}
	return -1
}

// Relocation cycles. Each triple (p, q, r) moves pieces p->q->r->p on a
// positive move and the other way round on a negative one.
var (
	turnEdgeCycles = [AxisCount][3]int{
		AxisW: {edgeWX, edgeWZ, edgeWY},
		AxisX: {edgeWX, edgeXY, edgeXZ},
		AxisY: {edgeWY, edgeYZ, edgeXY},
		AxisZ: {edgeWZ, edgeXZ, edgeYZ},
	}
	flipCornerCycles = [AxisCount][3]Axis{
		AxisW: {AxisX, AxisZ, AxisY},
		AxisX: {AxisW, AxisY, AxisZ},
		AxisY: {AxisW, AxisZ, AxisX},
		AxisZ: {AxisW, AxisX, AxisY},
	}
	flipEdgeCycles = [AxisCount][3]int{
		AxisW: {edgeXY, edgeXZ, edgeYZ},
		AxisX: {edgeWY, edgeYZ, edgeWZ},
		AxisY: {edgeWX, edgeWZ, edgeXZ},
		AxisZ: {edgeWX, edgeXY, edgeWY},
	}
)

// Puzzle is the full assembly of 4 tips, 4 centers and 6 edges.
//
// Only those 14 slots of the 3x3x3x3 address space carry meaning, so they
// are stored directly; every other address is a placeholder that no move
// can touch. Puzzle is a value type: assigning it makes a deep copy.
type Puzzle struct {
	tips    [AxisCount]Piece
	centers [AxisCount]Piece
	edges   [edgeCount]Piece
}

// New returns a puzzle with every slot Undefined, ready to be filled
// from scans.
func New() Puzzle {
	return Puzzle{}
}

// Solved returns the puzzle in its solved, canonical orientation.
func Solved() Puzzle {
	var p Puzzle
	for _, a := range Axes {
		p.tips[a] = solvedPiece(a)
		p.centers[a] = solvedPiece(a)
	}
	for i, e := range edgeAxes {
		p.edges[i] = solvedPiece(e[0], e[1])
	}
	return p
}

// solvedPiece returns a piece carrying every axis color except on the
// given hidden axes.
func solvedPiece(hidden ...Axis) Piece {
	var pc Piece
	for _, a := range Axes {
		pc[a] = AxisColor(a)
	}
	for _, a := range hidden {
		pc[a] = Undefined
	}
	return pc
}

// Clone returns a deep copy of the puzzle.
func (p *Puzzle) Clone() Puzzle {
	return *p
}

// Tip returns the tip piece on axis a.
func (p *Puzzle) Tip(a Axis) *Piece {
	return &p.tips[a]
}

// Center returns the center (axial) piece on axis a.
func (p *Puzzle) Center(a Axis) *Piece {
	return &p.centers[a]
}

// Edge returns the edge piece between axes a and b.
// Returns nil when a == b.
func (p *Puzzle) Edge(a, b Axis) *Piece {
	i := edgeIndex(a, b)
	if i < 0 {
		return nil
	}
	return &p.edges[i]
}

// At resolves a four-coordinate address to its piece.
// Returns false for placeholder and out-of-range addresses.
func (p *Puzzle) At(c Coord) (*Piece, bool) {
	var ones, twos []Axis
	for _, a := range Axes {
		switch c[a] {
		case 0:
		case 1:
			ones = append(ones, a)
		case 2:
			twos = append(twos, a)
		default:
			return nil, false
		}
	}

	switch {
	case len(twos) == 1 && len(ones) == 0:
		return p.Tip(twos[0]), true
	case len(twos) == 0 && len(ones) == 1:
		return p.Center(ones[0]), true
	case len(twos) == 0 && len(ones) == 2:
		return p.Edge(ones[0], ones[1]), true
	}
	return nil, false
}

// relocate moves pieces along a 3-cycle p->q->r->p (reversed for DirNeg).
func relocate[T any](s []T, p, q, r int, d Direction) {
	switch d {
	case DirPos:
		s[p], s[q], s[r] = s[r], s[p], s[q]
	case DirNeg:
		s[p], s[q], s[r] = s[q], s[r], s[p]
	}
}

// Turn rotates the tip of axis a together with the layer beneath it:
// the center of a and the three edges touching it are re-labelled and
// the edges trade places.
func (p *Puzzle) Turn(a Axis, d Direction) {
	if d == DirNone {
		return
	}
	p.tips[a].Rotate(a, d)
	p.centers[a].Rotate(a, d)
	for i, e := range edgeAxes {
		if e[0] == a || e[1] == a {
			p.edges[i].Rotate(a, d)
		}
	}
	c := turnEdgeCycles[a]
	relocate(p.edges[:], c[0], c[1], c[2], d)
}

// TurnTip rotates only the tip of axis a.
func (p *Puzzle) TurnTip(a Axis, d Direction) {
	p.tips[a].Rotate(a, d)
}

// Flip turns the whole puzzle around axis a: a full Turn plus the same
// rotation of the far layer, so a different face is presented to a fixed
// viewpoint.
func (p *Puzzle) Flip(a Axis, d Direction) {
	if d == DirNone {
		return
	}
	p.Turn(a, d)

	for _, b := range Axes {
		if b == a {
			continue
		}
		p.tips[b].Rotate(a, d)
		p.centers[b].Rotate(a, d)
	}
	for i, e := range edgeAxes {
		if e[0] != a && e[1] != a {
			p.edges[i].Rotate(a, d)
		}
	}

	cc := flipCornerCycles[a]
	relocate(p.tips[:], int(cc[0]), int(cc[1]), int(cc[2]), d)
	relocate(p.centers[:], int(cc[0]), int(cc[1]), int(cc[2]), d)
	ec := flipEdgeCycles[a]
	relocate(p.edges[:], ec[0], ec[1], ec[2], d)
}

// Apply performs a full turn.
func (p *Puzzle) Apply(m Move) {
	p.Turn(m.Axis, m.Dir)
}

// ApplyTip performs a tip-only turn.
func (p *Puzzle) ApplyTip(m Move) {
	p.TurnTip(m.Axis, m.Dir)
}

// ApplyFlip performs a flip.
func (p *Puzzle) ApplyFlip(m Move) {
	p.Flip(m.Axis, m.Dir)
}

// ApplyAll performs a sequence of full turns.
func (p *Puzzle) ApplyAll(moves []Move) {
	for _, m := range moves {
		p.Turn(m.Axis, m.Dir)
	}
}

// ExecuteTurns parses a move-string and applies each token as a turn,
// or as a tip-only turn when tipsOnly is set.
// On a parse error the puzzle is left unchanged.
func (p *Puzzle) ExecuteTurns(cmd string, tipsOnly bool) error {
	moves, err := ParseMoves(cmd)
	if err != nil {
		return err
	}
	for _, m := range moves {
		if tipsOnly {
			p.ApplyTip(m)
		} else {
			p.Apply(m)
		}
	}
	return nil
}

// ExecuteFlips parses a move-string and applies each token as a flip.
// On a parse error the puzzle is left unchanged.
func (p *Puzzle) ExecuteFlips(cmd string) error {
	moves, err := ParseMoves(cmd)
	if err != nil {
		return err
	}
	for _, m := range moves {
		p.ApplyFlip(m)
	}
	return nil
}

// Serialize returns the lookup key of the puzzle body: the 4 centers
// (W, X, Y, Z) followed by the 6 edges, each as "[WXYZ]".
// Tips are not part of the key.
func (p *Puzzle) Serialize() string {
	var sb strings.Builder
	sb.Grow((AxisCount + edgeCount) * (AxisCount + 2))
	for _, c := range p.centers {
		sb.WriteString(c.String())
	}
	for _, e := range p.edges {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// IsSolved reports whether every sticker of each face shows one color.
// Orientation is not taken into account.
func (p *Puzzle) IsSolved() bool {
	for _, a := range Axes {
		var want Color
		for _, s := range FaceStickers(a) {
			pc, _ := p.At(s.Coord)
			c := pc.Face(a)
			if c == Undefined {
				return false
			}
			if want == Undefined {
				want = c
			} else if c != want {
				return false
			}
		}
	}
	return true
}

// String renders the puzzle as a text net of its four faces.
func (p *Puzzle) String() string {
	var sb strings.Builder
	for i, row := range netRows(p) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row)
	}
	return sb.String()
}

// netRows lays out the Y, Z and X faces side by side with the W face
// hanging below them, apex pointing down.
func netRows(p *Puzzle) []string {
	faces := [3]Axis{AxisY, AxisZ, AxisX}
	rows := make([]string, 0, 6)
	for r := 0; r < 3; r++ {
		var sb strings.Builder
		for i, a := range faces {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Repeat(" ", 2-r))
			for _, s := range faceRow(p, a, r) {
				sb.WriteString(s.String())
			}
			sb.WriteString(strings.Repeat(" ", 2-r))
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	for r := 2; r >= 0; r-- {
		indent := strings.Repeat(" ", 6+2-r)
		var sb strings.Builder
		sb.WriteString(indent)
		for _, c := range faceRow(p, AxisW, r) {
			sb.WriteString(c.String())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// faceRow returns the colors of row r (0 = apex) of face a.
func faceRow(p *Puzzle, a Axis, r int) []Color {
	stickers := FaceStickers(a)
	start, n := r*r, 2*r+1
	out := make([]Color, 0, n)
	for _, s := range stickers[start : start+n] {
		pc, _ := p.At(s.Coord)
		out = append(out, pc.Face(s.Axis))
	}
	return out
}
