// Package tui provides the Bubble Tea front ends: the interactive puzzle,
// the solve history table and the SSH server that hosts them.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
	"github.com/vovakirdan/pyraminx/internal/solver"
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 4 * time.Second

// clearStatusMsg is sent when the status line with the given id expires.
type clearStatusMsg int

// clearStatusCmd expires status line id after statusTimeout.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg(id)
	})
}

// solvedMsg carries the result of a background solve.
type solvedMsg struct {
	gen      int // Puzzle generation the solve was started for
	solution *solver.Solution
	err      error
	elapsed  time.Duration
}

// solveCmd runs the solver off the UI goroutine on a copy of p.
func solveCmd(ctx context.Context, s *solver.Solver, p pyraminx.Puzzle, gen int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		sol, err := s.FindSolution(ctx, &p)
		return solvedMsg{
			gen:      gen,
			solution: sol,
			err:      err,
			elapsed:  time.Since(start),
		}
	}
}
