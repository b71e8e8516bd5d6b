package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pyraminx.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Path: "~/.pyraminx/solutions.db",
		},
		Solver: SolverConfig{
			MaxDepth:   4,
			TableDepth: 7,
		},
		Scramble: ScrambleConfig{
			Length: 8,
			Tips:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
