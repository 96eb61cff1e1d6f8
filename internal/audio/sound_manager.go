package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/multiball/internal/config"
)

// bufferLength is the speaker buffer; shorter means lower latency.
const bufferLength = 100 * time.Millisecond

// SoundManager plays one-shot effects through a shared mixer.
// Until Initialize succeeds every Play call is a no-op, so a muted or
// audio-less session uses the same code path.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager from the audio config.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(bufferLength)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether effects are audible.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close that is safe to call here; an empty mixer
	// keeps the device silent.
	sm.initialized = false
}

// PlayBlockDestroy plays the block destroyed pop.
func (sm *SoundManager) PlayBlockDestroy() {
	sm.play(BlockDestroySound)
}

// PlayBallCollision plays the ball-ball click.
func (sm *SoundManager) PlayBallCollision() {
	sm.play(BallCollisionSound)
}

func (sm *SoundManager) play(effect func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := effect(sm.rate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
