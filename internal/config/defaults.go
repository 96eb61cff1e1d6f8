package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// Must stay in sync with defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Ball: BallConfig{
			Count:        1,
			Size:         10,
			BaseSpeed:    8,
			LaunchOffset: 80,
			LevelSpeedUp: 2,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Speed:        10,
			BottomOffset: 20,
		},
		Blocks: BlocksConfig{
			Rows:       3,
			Columns:    8,
			Height:     20,
			Gap:        10,
			TopMargin:  40,
			SideMargin: 20,
			BaseHue:    220,
			HueStep:    15,
		},
		Gameplay: GameplayConfig{
			BlockPoints: 10,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 1.0,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
