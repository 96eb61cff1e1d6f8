// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// maxPaddleColumns bounds the paddle width in terminal columns.
const maxPaddleColumns = 80

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the game.
// Distances and speeds are world units; one terminal cell spans
// Field.CellWidth x Field.CellHeight units.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines how the terminal maps onto world coordinates.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Count        int     `yaml:"count"`
	Size         float64 `yaml:"size"`
	BaseSpeed    float64 `yaml:"base_speed"`
	LaunchOffset float64 `yaml:"launch_offset"` // Distance from the floor to the parked ball's top edge
	LevelSpeedUp float64 `yaml:"level_speed_up"`
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Height     float64 `yaml:"height"`
	Gap        float64 `yaml:"gap"`
	TopMargin  float64 `yaml:"top_margin"`
	SideMargin float64 `yaml:"side_margin"`
	BaseHue    int     `yaml:"base_hue"`
	HueStep    int     `yaml:"hue_step"`
}

// GameplayConfig defines scoring rules.
type GameplayConfig struct {
	BlockPoints int `yaml:"block_points"`
}

// AudioConfig defines sound effect parameters.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	// HoldTicks is how many ticks a direction key stays held after a press.
	// Terminals do not report key releases, so presses are latched.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// The empty string yields an empty preset (no adjustment).
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, errors.New("field cell size must be positive"))
	}
	if c.Ball.Count < 1 {
		errs = append(errs, fmt.Errorf("ball count must be at least 1, got %d", c.Ball.Count))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, errors.New("ball size must be positive"))
	}
	if c.Ball.BaseSpeed <= 0 {
		errs = append(errs, errors.New("ball base_speed must be positive"))
	}
	if c.Ball.LevelSpeedUp < 0 {
		errs = append(errs, errors.New("ball level_speed_up must not be negative"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Field.CellWidth > 0 && c.Paddle.Width > maxPaddleColumns*c.Field.CellWidth {
		errs = append(errs, fmt.Errorf("paddle width %g exceeds %d columns", c.Paddle.Width, maxPaddleColumns))
	}
	if c.Paddle.Speed <= 0 {
		errs = append(errs, errors.New("paddle speed must be positive"))
	}
	if c.Blocks.Rows < 1 || c.Blocks.Columns < 1 {
		errs = append(errs, errors.New("blocks grid needs at least one row and column"))
	}
	if c.Blocks.Height <= 0 {
		errs = append(errs, errors.New("block height must be positive"))
	}
	if c.Gameplay.BlockPoints < 0 {
		errs = append(errs, errors.New("block_points must not be negative"))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, errors.New("audio sample_rate must be positive"))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, errors.New("input hold_ticks must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
