package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/multiball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.multiball/configs/breakout.yaml or pass an edited copy with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
