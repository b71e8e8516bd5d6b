package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyraminx/internal/config"
	"github.com/vovakirdan/pyraminx/internal/pyraminx"
	"github.com/vovakirdan/pyraminx/internal/solver"
	"github.com/vovakirdan/pyraminx/internal/storage"
	"github.com/vovakirdan/pyraminx/internal/table"
)

var (
	flagTips     string
	flagFlips    string
	flagShow     bool
	flagInMemory int
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Apply a scramble and print a solution",
	Long: `Apply a scramble to a solved puzzle and print the moves that solve it.

The scramble is a move string such as "w+x-y+". Tip-only twists may be
written in parentheses and whole-puzzle flips in brackets, or passed
with --tips and --flips, which are applied after the scramble.

The printed solution lists the turns first and, after a colon, the tip
twists, e.g. "x+w-:y+".

The solution table must have been generated with 'pyraminx seed', or
use --in-memory to build a smaller table on the fly.

Examples:
  pyraminx solve "w+x-"
  pyraminx solve "w+x-y+z-" --tips "w+" --flips "x+"
  pyraminx solve "w+x-(y+)[z-]" --show
  pyraminx solve "w+x+y+z+w+" --in-memory 4`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagTips, "tips", "", "Tip-only twists applied after the scramble")
	solveCmd.Flags().StringVar(&flagFlips, "flips", "", "Whole-puzzle flips applied last")
	solveCmd.Flags().BoolVar(&flagShow, "show", false, "Print the scrambled puzzle")
	solveCmd.Flags().IntVar(&flagInMemory, "in-memory", 0, "Generate a table of this depth instead of using the database")
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	steps, err := pyraminx.ParseSteps(args[0])
	if err != nil {
		fatalf("parsing scramble: %v", err)
	}
	steps, err = appendSteps(steps, flagTips, pyraminx.StepTip)
	if err != nil {
		fatalf("parsing --tips: %v", err)
	}
	steps, err = appendSteps(steps, flagFlips, pyraminx.StepFlip)
	if err != nil {
		fatalf("parsing --flips: %v", err)
	}

	p := pyraminx.Solved()
	for _, s := range steps {
		p.Do(s)
	}
	if flagShow {
		fmt.Println(p.String())
		fmt.Println()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store *storage.Store
	var lookup solver.Lookup
	if flagInMemory > 0 {
		logger.Info("generating table", "depth", flagInMemory)
		entries, genErr := table.Generate(ctx, flagInMemory)
		if genErr != nil {
			fatalf("generating table: %v", genErr)
		}
		lookup = solver.MapLookup(entries)
	} else {
		store = openStore(cfg)
		defer store.Close()
		lookup = store
	}

	sol := solvePuzzle(ctx, cfg, lookup, &p, logger)
	if sol == nil {
		os.Exit(1)
	}

	if store != nil {
		recordSolve(ctx, store, pyraminx.FormatSteps(steps), sol, logger)
	}
}

// appendSteps parses moves of one kind and appends them to steps.
func appendSteps(steps []pyraminx.Step, moves string, kind pyraminx.StepKind) ([]pyraminx.Step, error) {
	parsed, err := pyraminx.ParseMoves(moves)
	if err != nil {
		return nil, err
	}
	for _, m := range parsed {
		steps = append(steps, pyraminx.Step{Kind: kind, Move: m})
	}
	return steps, nil
}

// solveResult is a finished solve as printed and recorded.
type solveResult struct {
	solution *solver.Solution
	elapsed  time.Duration
}

// solvePuzzle solves p and prints the outcome. It returns nil when no
// solution was printed.
func solvePuzzle(ctx context.Context, cfg config.Config, lookup solver.Lookup, p *pyraminx.Puzzle, logger *log.Logger) *solveResult {
	s := newSolver(cfg, lookup, logger)

	start := time.Now()
	sol, err := s.FindSolution(ctx, p)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, solver.ErrLookupUnavailable):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pyraminx seed' to generate the solution table.")
		return nil
	case errors.Is(err, pyraminx.ErrInvalidState):
		fmt.Fprintf(os.Stderr, "Error: the puzzle state is not reachable: %v\n", err)
		return nil
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil
	case sol == nil:
		fmt.Printf("No solution within %d moves of the table.\n", s.MaxDepth())
		return &solveResult{elapsed: elapsed}
	}

	if sol.Len() == 0 {
		fmt.Println("Already solved.")
	} else {
		fmt.Printf("Solution: %s\n", sol.String())
		fmt.Printf("Moves:    %d\n", sol.Len())
	}
	logger.Debug("solve finished", "moves", sol.String(), "elapsed", elapsed)
	return &solveResult{solution: sol, elapsed: elapsed}
}

// recordSolve stores the outcome of a solve in the history.
func recordSolve(ctx context.Context, store *storage.Store, scramble string, res *solveResult, logger *log.Logger) {
	rec := storage.SolveRecord{
		Scramble: scramble,
		Duration: res.elapsed,
	}
	if res.solution != nil {
		rec.Found = true
		rec.Solution = res.solution.String()
	}
	if _, err := store.SaveSolve(ctx, &rec); err != nil {
		logger.Warn("could not record solve", "error", err)
	}
}
