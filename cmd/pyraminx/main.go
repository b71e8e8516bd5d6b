// pyraminx models a Pyraminx puzzle and solves it against a precomputed
// table of solutions stored in SQLite.
//
// Usage:
//
//	pyraminx solve <scramble>  - Apply a scramble and print a solution
//	pyraminx scan <file>       - Assemble a puzzle from four face scans and solve it
//	pyraminx seed              - Generate the solution table into the database
//	pyraminx history           - Show recorded solves
//	pyraminx play              - Play with the puzzle in the terminal
//	pyraminx serve             - Start SSH server for remote play
//	pyraminx config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pyraminx, ./configs)
//	--db <path>         - Database path (overrides database.path)
//	--log-level <level> - debug, info, warn or error (overrides log.level)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyraminx/internal/config"
	"github.com/vovakirdan/pyraminx/internal/solver"
	"github.com/vovakirdan/pyraminx/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pyraminx",
	Short: "Pyraminx - model and solve a Pyraminx puzzle",
	Long: `Pyraminx models the tetrahedral twisty puzzle and solves any state
by searching a few moves deep and looking the rest up in a table of
precomputed solutions.

Available commands:
  solve    - Apply a scramble and print a solution
  scan     - Solve a puzzle read from four face scans
  seed     - Generate the solution table
  history  - View recorded solves
  play     - Interactive puzzle in the terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pyraminx seed
  pyraminx solve "w+x-y+" --tips "z-"
  pyraminx scan ./scans.yaml
  pyraminx play --difficulty hard
  pyraminx serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solutions database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// newLogger creates the stderr logger for cfg.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pyraminx",
	})
	if level, err := cfg.Log.ParseLevel(); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openStore opens the configured database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	return store
}

// newSolver creates a solver that looks states up in lookup.
func newSolver(cfg config.Config, lookup solver.Lookup, logger *log.Logger) *solver.Solver {
	return solver.New(lookup,
		solver.WithMaxDepth(cfg.Solver.MaxDepth),
		solver.WithLogger(logger),
	)
}
