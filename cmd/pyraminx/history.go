package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pyraminx/internal/platform/tui"
	"github.com/vovakirdan/pyraminx/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recorded solves",
	Long: `Show the most recent solves with their scramble, solution and time.

By default the history opens as an interactive table. Use --plain to
print it instead.

Examples:
  pyraminx history
  pyraminx history --plain --limit 20`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solves to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	printHistory(store)
}

// printHistory writes the recent solves and stats to stdout.
func printHistory(store *storage.Store) {
	ctx := context.Background()
	solves, err := store.RecentSolves(ctx, flagLimit)
	if err != nil {
		fatalf("retrieving solves: %v", err)
	}

	fmt.Println("Solve History")
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pyraminx solve <scramble>' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-20s  %-8s  %s\n", "#", "Scramble", "Solution", "Time", "Date")
	fmt.Printf("  %-4s  %-20s  %-20s  %-8s  %s\n", "-", "--------", "--------", "----", "----")

	for _, row := range tui.SolveRows(solves) {
		fmt.Printf("  %-4s  %-20s  %-20s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	// Show totals
	stats, err := store.GetSolveStats(ctx)
	if err == nil && stats.Attempts > 0 {
		fmt.Println()
		fmt.Printf("%d attempts, %d solved, best %s\n", stats.Attempts, stats.Solved, stats.BestDuration)
	}
}
