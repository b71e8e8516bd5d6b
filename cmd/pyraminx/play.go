package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pyraminx/internal/config"
	"github.com/vovakirdan/pyraminx/internal/core"
	"github.com/vovakirdan/pyraminx/internal/platform/tui"
)

var (
	flagSeed       int64
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the puzzle in the terminal",
	Long: `Open the puzzle as an interactive net.

Controls:
  w x y z    - Turn a corner clockwise
  W X Y Z    - Turn a corner counterclockwise
  t          - Toggle tip mode (letters twist only the tip)
  1 2 3 4    - Flip the whole puzzle around w, x, y or z
  r          - Scramble
  u          - Undo
  c          - Reset
  s          - Find a solution
  a          - Apply the solution
  ?          - Help
  q/Ctrl+C   - Quit

Difficulty options:
  easy   - 4 random turns
  normal - 8 random turns and tip twists
  hard   - 14 random turns, tip twists and a flip

Examples:
  pyraminx play
  pyraminx play --difficulty hard
  pyraminx play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for scrambles (0 = random based on time)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Scramble preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if flagDifficulty != "" {
		preset := config.Preset(flagDifficulty)
		switch preset {
		case config.PresetEasy, config.PresetNormal, config.PresetHard:
			config.ApplyPreset(&cfg.Scramble, preset)
		default:
			fatalf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
	}

	// The terminal belongs to the TUI
	logger := log.New(io.Discard)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg)
	defer store.Close()

	deps := tui.PlayDeps{
		Solver:   newSolver(cfg, store, logger),
		Store:    store,
		Scramble: cfg.Scramble,
		Logger:   logger,
	}
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = flagSeed

	if err := tui.Run(deps, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		os.Exit(1)
	}
}
