package solver

import "github.com/vovakirdan/pyraminx/internal/pyraminx"

// AxisMap translates canonical axis letters into the axis letters of
// another orientation.
type AxisMap [pyraminx.AxisCount]pyraminx.Axis

// NewAxisMap builds the map for a puzzle that was canonicalized with a
// reorientation whose inverse flips are given.
//
// A reference piece carrying the solved colors is rotated by the inverse
// flips; the color now on axis a names the canonical axis that a
// corresponds to.
func NewAxisMap(inverse []pyraminx.Move) AxisMap {
	ref := pyraminx.NewPiece(pyraminx.Yellow, pyraminx.Blue, pyraminx.Orange, pyraminx.Green)
	for _, m := range inverse {
		ref.Rotate(m.Axis, m.Dir)
	}

	var am AxisMap
	for _, a := range pyraminx.Axes {
		canonical, _ := pyraminx.ColorAxis(ref.Face(a))
		am[canonical] = a
	}
	return am
}

// Map returns the move with its axis relabelled.
func (am AxisMap) Map(m pyraminx.Move) pyraminx.Move {
	return pyraminx.Move{Axis: am[m.Axis], Dir: m.Dir}
}

// TransformMoves re-expresses moves found in canonical orientation in the
// axis labels of the original orientation.
func TransformMoves(moves, inverse []pyraminx.Move) []pyraminx.Move {
	am := NewAxisMap(inverse)
	out := make([]pyraminx.Move, len(moves))
	for i, m := range moves {
		out[i] = am.Map(m)
	}
	return out
}
