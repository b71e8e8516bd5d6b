package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyraminx/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pyraminx SSH server",
	Long: `Start an SSH server that lets users connect and play with the puzzle.

Each SSH connection gets its own puzzle. All sessions share the solution
table and the solve history.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.pyraminx/host_key

Examples:
  pyraminx serve                           # Listen on server.address (:23235)
  pyraminx serve --ssh :2222               # Listen on port 2222
  pyraminx serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: server.address)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default: server.host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default: server.idle_timeout)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(cfg).WithPrefix("pyraminx-ssh")

	store := openStore(cfg)
	defer store.Close()

	deps := tui.PlayDeps{
		Solver:   newSolver(cfg, store, logger),
		Store:    store,
		Scramble: cfg.Scramble,
		Logger:   logger,
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(cfg.Server), deps, logger)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting pyraminx SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
