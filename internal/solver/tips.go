package solver

import "github.com/vovakirdan/pyraminx/internal/pyraminx"

// tipOffsets lists, per axis, the three other axes used to compare a tip
// against the center beneath it.
var tipOffsets = [pyraminx.AxisCount][3]pyraminx.Axis{
	pyraminx.AxisW: {pyraminx.AxisX, pyraminx.AxisZ, pyraminx.AxisY},
	pyraminx.AxisX: {pyraminx.AxisW, pyraminx.AxisY, pyraminx.AxisZ},
	pyraminx.AxisY: {pyraminx.AxisW, pyraminx.AxisZ, pyraminx.AxisX},
	pyraminx.AxisZ: {pyraminx.AxisW, pyraminx.AxisX, pyraminx.AxisY},
}

// SolveTips returns the tip-only turns that align every tip with its
// center. Tips and centers share their layer, so the answer holds before
// and after any body solution.
func SolveTips(p *pyraminx.Puzzle) []pyraminx.Move {
	var moves []pyraminx.Move
	for _, a := range pyraminx.Axes {
		tip := p.Tip(a)
		center := p.Center(a)
		o := tipOffsets[a]

		switch tip.Face(o[0]) {
		case center.Face(o[1]):
			moves = append(moves, pyraminx.Move{Axis: a, Dir: pyraminx.DirPos})
		case center.Face(o[2]):
			moves = append(moves, pyraminx.Move{Axis: a, Dir: pyraminx.DirNeg})
		}
	}
	return moves
}
