package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/multiball/internal/audio"
	"github.com/vovakirdan/multiball/internal/config"
	"github.com/vovakirdan/multiball/internal/core"
	"github.com/vovakirdan/multiball/internal/games/breakout"
	"github.com/vovakirdan/multiball/internal/platform/tui"
	"github.com/vovakirdan/multiball/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBalls      int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode a selector is shown.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch balls
  P/Esc            - Pause
  N/Enter          - Next level (after stage clear)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower balls, wider paddle
  normal - Configured values
  hard   - Faster balls, narrower paddle

Examples:
  multiball play multiball
  multiball play breakout --difficulty easy
  multiball play multiball --balls 6 --mute
  multiball play multiball --config ./my-breakout.yaml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().IntVar(&flagBalls, "balls", 0, "Number of balls (0 = mode default)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Validate before the terminal is taken over
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagBalls < 0 {
		return fmt.Errorf("--balls must not be negative, got %d", flagBalls)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var modeID string
	if len(args) > 0 {
		modeID = args[0]
	} else {
		modeID, err = tui.RunModeSelector(runtime)
		if err != nil {
			return err
		}
		if modeID == "" {
			return nil
		}
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetBallCount(flagBalls)

	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("%w (run 'multiball list' to see available modes)", err)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if cfg.Audio.Enabled && !flagMute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer sound.Cleanup()

	opts := tui.Options{
		Logger:    logger,
		HoldTicks: cfg.Input.HoldTicks,
	}
	if sound.Enabled() {
		opts.Sound = sound
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		return fmt.Errorf("running %s: %w", modeID, err)
	}
	return nil
}
