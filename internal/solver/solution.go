package solver

import (
	"strings"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// TipDelimiter separates the body moves from the tip-only moves in a
// solution string.
const TipDelimiter = ":"

// Solution is a found sequence expressed in the orientation of the
// scrambled puzzle. Body moves are full turns; Tips are tip-only turns
// that can be executed after the body.
type Solution struct {
	Body []pyraminx.Move
	Tips []pyraminx.Move
}

// String formats the solution as "<body>" or "<body>:<tips>".
func (s Solution) String() string {
	out := pyraminx.FormatMoves(s.Body)
	if len(s.Tips) > 0 {
		out += TipDelimiter + pyraminx.FormatMoves(s.Tips)
	}
	return out
}

// Len returns the total number of moves.
func (s Solution) Len() int {
	return len(s.Body) + len(s.Tips)
}

// ApplyTo replays the solution on p: body moves as turns, then tip moves
// as tip-only turns.
func (s Solution) ApplyTo(p *pyraminx.Puzzle) {
	p.ApplyAll(s.Body)
	for _, m := range s.Tips {
		p.ApplyTip(m)
	}
}

// ParseSolution parses a solution string in the "<body>[:<tips>]" format.
func ParseSolution(s string) (Solution, error) {
	body, tips, _ := strings.Cut(s, TipDelimiter)

	var sol Solution
	var err error
	if sol.Body, err = pyraminx.ParseMoves(body); err != nil {
		return Solution{}, err
	}
	if sol.Tips, err = pyraminx.ParseMoves(tips); err != nil {
		return Solution{}, err
	}
	return sol, nil
}
