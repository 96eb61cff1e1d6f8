package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Block destroyed: a rising sine pop.
const (
	blockFreqFrom    = 200.0
	blockFreqTo      = 1000.0
	blockGainFrom    = 0.2
	blockGainTo      = 0.01
	blockGainRamp    = 100 * time.Millisecond
	BlockSoundLength = 150 * time.Millisecond
)

// Ball-ball collision: a quiet square click.
const (
	clickFreqFrom    = 100.0
	clickFreqTo      = 200.0
	clickGlide       = 50 * time.Millisecond
	clickGain        = 0.01
	ClickSoundLength = 80 * time.Millisecond
)

// BlockDestroySound returns the block destroyed effect at the given volume.
func BlockDestroySound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(blockFreqFrom, blockFreqTo, BlockSoundLength, BlockSoundLength, WaveSine, rate)
	shaped := NewGainRamp(osc, blockGainFrom, blockGainTo, blockGainRamp, rate)
	return newVolume(shaped, volume)
}

// BallCollisionSound returns the ball-ball collision effect at the given
// volume.
func BallCollisionSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(clickFreqFrom, clickFreqTo, clickGlide, ClickSoundLength, WaveSquare, rate)
	shaped := NewGainRamp(osc, clickGain, clickGain, 0, rate)
	return newVolume(shaped, volume)
}
