package solver

import (
	"context"
	"fmt"
	"slices"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// node is one entry of the search queue: a private copy of the state and
// the moves that lead to it from the searched puzzle.
type node struct {
	state pyraminx.Puzzle
	path  []pyraminx.Move
}

// Search runs a depth-bounded breadth-first search from p, consulting the
// lookup for every visited state. On a hit it returns the moves taken to
// reach that state, in replay order, followed by the table entry.
//
// Lookups are issued one at a time. found is false once every state
// within MaxDepth moves has been checked without a hit.
func (s *Solver) Search(ctx context.Context, p *pyraminx.Puzzle) (moves []pyraminx.Move, found bool, err error) {
	queue := []node{{state: p.Clone()}}
	visited := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		n := queue[0]
		queue[0] = node{}
		queue = queue[1:]
		visited++

		entry, ok, err := s.lookup.Find(ctx, n.state.Serialize())
		if err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
		}
		if ok {
			tail, err := pyraminx.ParseMoves(entry)
			if err != nil {
				return nil, false, fmt.Errorf("%w: bad table entry %q: %w", ErrLookupUnavailable, entry, err)
			}
			s.logger.Debug("lookup hit", "depth", len(n.path), "visited", visited)
			return append(n.path, tail...), true, nil
		}

		if len(n.path) >= s.maxDepth {
			continue
		}

		for _, m := range pyraminx.Generators {
			child := node{
				state: n.state,
				path:  append(slices.Clip(n.path), m),
			}
			child.state.Apply(m)
			queue = append(queue, child)
		}
	}

	s.logger.Debug("search exhausted", "visited", visited)
	return nil, false, nil
}
