package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyraminx/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Solve a puzzle read from four face scans",
	Long: `Assemble a puzzle from four scans of its bottom face and solve it.

The file lists the nine sticker colors seen on the bottom face after each
step of the flip sequence (none, w+, w+, z-). Colors are Y, B, G and O.
A solved puzzle scans as:

  scans:
    - "OOOOOOOOO"
    - "GGGGGGGGG"
    - "B B B B B B B B B"
    - "Y,Y,Y,Y,Y,Y,Y,Y,Y"

Bad scans are not rejected up front; they show up as an unreachable
state or as no solution.

Examples:
  pyraminx scan ./scans.yaml
  pyraminx scan ./scans.yaml --show`,
	Args: cobra.ExactArgs(1),
	Run:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&flagShow, "show", false, "Print the assembled puzzle")
}

func runScan(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	scans, err := scan.LoadFile(args[0])
	if err != nil {
		fatalf("%v", err)
	}
	p := scan.Assemble(scans)
	logger.Debug("assembled puzzle", "file", args[0], "state", p.Serialize())
	if flagShow {
		fmt.Println(p.String())
		fmt.Println()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := openStore(cfg)
	defer store.Close()

	res := solvePuzzle(ctx, cfg, store, &p, logger)
	if res == nil {
		os.Exit(1)
	}
	recordSolve(ctx, store, "scan:"+filepath.Base(args[0]), res, logger)
}
