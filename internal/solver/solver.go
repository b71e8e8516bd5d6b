// Package solver finds move sequences that solve a scrambled puzzle.
//
// A scramble is first flipped into the canonical orientation, then a
// bounded breadth-first search looks every visited state up in a
// precomputed solution table. The sequence found is translated back into
// the axis labels of the original orientation, and tip alignment is
// appended separately since tips never affect the body.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// DefaultMaxDepth is the default number of moves the search may prepend
// to a table entry.
const DefaultMaxDepth = 4

var (
	// ErrInvalidState means the puzzle could not be canonicalized
	// (malformed scan). It is the same value as pyraminx.ErrInvalidState.
	ErrInvalidState = pyraminx.ErrInvalidState

	// ErrLookupUnavailable wraps failures of the lookup oracle itself.
	ErrLookupUnavailable = errors.New("solver: lookup unavailable")
)

// Solver combines canonicalization, bounded search and back-transform.
// A Solver holds no per-solve state and may be reused.
type Solver struct {
	lookup   Lookup
	maxDepth int
	logger   *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxDepth sets how many moves the search may take before giving up
// on a branch. Values below zero are treated as zero (lookup only).
func WithMaxDepth(n int) Option {
	return func(s *Solver) {
		s.maxDepth = max(n, 0)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a solver that consults lookup.
func New(lookup Lookup, opts ...Option) *Solver {
	s := &Solver{
		lookup:   lookup,
		maxDepth: DefaultMaxDepth,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxDepth returns the configured search depth.
func (s *Solver) MaxDepth() int {
	return s.maxDepth
}

// FindSolution solves p without modifying it.
//
// It returns nil, nil when no solution exists within the search bound.
// Errors wrap ErrInvalidState when p cannot be canonicalized and
// ErrLookupUnavailable when the oracle fails.
func (s *Solver) FindSolution(ctx context.Context, p *pyraminx.Puzzle) (*Solution, error) {
	start := time.Now()

	state, reorient, err := p.Canonical()
	if err != nil {
		return nil, fmt.Errorf("solver: canonicalize: %w", err)
	}
	s.logger.Debug("canonical state", "flips", pyraminx.FormatMoves(reorient.Forward))
	s.logger.Debug("\n" + state.String())

	s.logger.Debug("search for solution", "max_depth", s.maxDepth)
	body, found, err := s.Search(ctx, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug("no solution found", "elapsed", time.Since(start))
		return nil, nil
	}

	sol := &Solution{
		Body: TransformMoves(body, reorient.Inverse),
		Tips: SolveTips(p),
	}
	s.logger.Debug("found solution", "moves", sol.String(), "elapsed", time.Since(start))
	return sol, nil
}
