// Package config provides YAML-based configuration loading for the
// solver, its storage and the terminal front ends.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Solver   SolverConfig   `yaml:"solver"`
	Scramble ScrambleConfig `yaml:"scramble"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"` // "~" is expanded to the home directory
}

// SolverConfig bounds the search and the generated table.
type SolverConfig struct {
	MaxDepth   int `yaml:"max_depth"`   // Moves searched before the table is consulted
	TableDepth int `yaml:"table_depth"` // Depth generated by the seed command
}

// ScrambleConfig controls random scrambles in the interactive view.
type ScrambleConfig struct {
	Length int  `yaml:"length"` // Number of random turns
	Tips   bool `yaml:"tips"`   // Also twist tips
	Flips  bool `yaml:"flips"`  // Also reorient the whole puzzle
}

// LogConfig sets the logger up.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.pyraminx/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Preset represents a named scramble difficulty.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts the scramble settings for a difficulty preset.
// Unknown presets leave the configuration unchanged.
func ApplyPreset(cfg *ScrambleConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Length = 4
		cfg.Tips = false
		cfg.Flips = false
	case PresetNormal:
		cfg.Length = 8
		cfg.Tips = true
		cfg.Flips = false
	case PresetHard:
		cfg.Length = 14
		cfg.Tips = true
		cfg.Flips = true
	}
}
