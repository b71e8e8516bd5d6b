// Package table builds the precomputed solution table consulted by the
// solver.
//
// The table maps the serialization of every body state reachable from
// solved within a given number of turns to the turns that bring it back.
package table

import (
	"context"
	"errors"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// ErrNegativeDepth is returned when Generate is asked for a depth below zero.
var ErrNegativeDepth = errors.New("table: negative depth")

// item is one state waiting to be expanded, with its solution string and
// the number of turns it lies from solved.
type item struct {
	state    pyraminx.Puzzle
	solution string
	depth    int
}

// Generate explores the states within depth turns of solved, breadth
// first. The first path to reach a state wins, so every entry is a
// shortest solution among those generated.
func Generate(ctx context.Context, depth int) (map[string]string, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}

	solved := pyraminx.Solved()
	entries := map[string]string{solved.Serialize(): ""}
	queue := []item{{state: solved}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		it := queue[0]
		queue = queue[1:]
		if it.depth >= depth {
			continue
		}

		for _, m := range pyraminx.Generators {
			next := it.state
			next.Apply(m)
			key := next.Serialize()
			if _, seen := entries[key]; seen {
				continue
			}
			sol := m.Inverse().String() + it.solution
			entries[key] = sol
			queue = append(queue, item{state: next, solution: sol, depth: it.depth + 1})
		}
	}
	return entries, nil
}
