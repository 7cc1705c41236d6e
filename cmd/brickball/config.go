package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in brickball.yaml. Save it to
~/.brickball/configs/brickball.yaml or ./configs/brickball.yaml and edit
the keys you want to change; missing keys keep their defaults.

Examples:
  brickball config > ~/.brickball/configs/brickball.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
	},
}
