package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("solver:\n  max_depth: 2\nlog:\n  level: debug\nserver:\n  idle_timeout: 5m\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Solver.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.Solver.MaxDepth)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	// Keys absent from the file keep their defaults
	if cfg.Solver.TableDepth != Default().Solver.TableDepth {
		t.Errorf("TableDepth = %d, want default", cfg.Solver.TableDepth)
	}
	if cfg.Database.Path != Default().Database.Path {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("solver: [1, 2"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed file")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("log:\n  level: chatty\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	// User config wins once present
	dir := filepath.Join(home, ".pyraminx")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("solver:\n  table_depth: 5\n"), 0o644)

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Solver.TableDepth != 5 {
		t.Errorf("TableDepth = %d, want 5 from user config", cfg.Solver.TableDepth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"lookup only", func(c *Config) { c.Solver.MaxDepth = 0 }, false},
		{"negative depth", func(c *Config) { c.Solver.MaxDepth = -1 }, true},
		{"zero table depth", func(c *Config) { c.Solver.TableDepth = 0 }, true},
		{"negative scramble", func(c *Config) { c.Scramble.Length = -2 }, true},
		{"empty database", func(c *Config) { c.Database.Path = "" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"warn level", func(c *Config) { c.Log.Level = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := LogConfig{Level: "debug"}.ParseLevel()
	if err != nil || level != log.DebugLevel {
		t.Errorf("ParseLevel(debug) = %v, %v", level, err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset Preset
		length int
		tips   bool
		flips  bool
	}{
		{PresetEasy, 4, false, false},
		{PresetNormal, 8, true, false},
		{PresetHard, 14, true, true},
		{Preset("unknown"), 8, true, false},
	}

	for _, tt := range tests {
		cfg := Default().Scramble
		ApplyPreset(&cfg, tt.preset)
		if cfg.Length != tt.length || cfg.Tips != tt.tips || cfg.Flips != tt.flips {
			t.Errorf("ApplyPreset(%s) = %+v", tt.preset, cfg)
		}
	}
}
