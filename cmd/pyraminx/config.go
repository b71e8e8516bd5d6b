package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pyraminx/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and global flags are
applied. With --defaults, print the built-in defaults file, which is a
good starting point for ~/.pyraminx/config.yaml.

Examples:
  pyraminx config
  pyraminx config --defaults > ~/.pyraminx/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	fmt.Print(string(data))
}
