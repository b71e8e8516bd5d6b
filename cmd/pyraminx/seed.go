package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyraminx/internal/table"
)

var flagDepth int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate the solution table",
	Long: `Generate every state within --depth turns of solved and store the
shortest way back for each one in the database.

Entries already present are kept, so seeding again with a larger depth
only adds the new states. Together with the solver's search depth
(solver.max_depth) the table depth bounds the scrambles that can be
solved.

Examples:
  pyraminx seed
  pyraminx seed --depth 5
  pyraminx seed --db ./solutions.db`,
	Run: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&flagDepth, "depth", 0, "Table depth (default: solver.table_depth from config)")
}

func runSeed(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	depth := cfg.Solver.TableDepth
	if flagDepth > 0 {
		depth = flagDepth
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	logger.Info("generating table", "depth", depth)
	entries, err := table.Generate(ctx, depth)
	if err != nil {
		fatalf("generating table: %v", err)
	}
	logger.Info("table generated", "states", len(entries), "elapsed", time.Since(start).Round(time.Millisecond))

	store := openStore(cfg)
	defer store.Close()

	inserted, err := store.PutSolutions(ctx, entries)
	if err != nil {
		fatalf("storing table: %v", err)
	}
	total, err := store.CountSolutions(ctx)
	if err != nil {
		fatalf("counting solutions: %v", err)
	}

	fmt.Printf("Generated %d states within %d moves\n", len(entries), depth)
	fmt.Printf("Inserted %d new entries, table now holds %d\n", inserted, total)
}
