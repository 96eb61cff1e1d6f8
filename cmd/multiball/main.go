// multiball is a terminal breakout game with several balls in play at once.
//
// Usage:
//
//	multiball                    - Pick a mode interactively
//	multiball play [mode]        - Play a mode (breakout, multiball)
//	multiball list               - List available modes
//	multiball config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write a session log to path
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/multiball/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "multiball",
	Short: "Multiball - breakout with many balls in your terminal",
	Long: `Multiball is a terminal breakout game. Several balls share the field,
bounce off each other and clear blocks together.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  config   - Print the default configuration

Examples:
  multiball
  multiball play multiball --balls 5
  multiball play breakout --difficulty hard
  multiball config > ~/.multiball/configs/breakout.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a session log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
