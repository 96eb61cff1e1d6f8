package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/multiball/internal/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()

	var out []float64
	buf := make([][2]float64, 512)
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func TestExpRamp(t *testing.T) {
	tests := []struct {
		name           string
		from, to, frac float64
		want           float64
	}{
		{"start", 200, 1000, 0, 200},
		{"end", 200, 1000, 1, 1000},
		{"geometric midpoint", 100, 400, 0.5, 200},
		{"clamped below", 200, 1000, -1, 200},
		{"clamped above", 200, 1000, 2, 1000},
		{"flat", 0.01, 0.01, 0.5, 0.01},
		{"linear fallback", 0, 1, 0.25, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExpRamp(tc.from, tc.to, tc.frac); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ExpRamp = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSweepFrequency(t *testing.T) {
	osc := NewSweep(200, 1000, 150*time.Millisecond, 200*time.Millisecond, WaveSine, testRate).(*sweep)

	if f := osc.Freq(0); f != 200 {
		t.Errorf("start frequency = %v, expected 200", f)
	}
	if f := osc.Freq(testRate.N(150 * time.Millisecond)); f != 1000 {
		t.Errorf("frequency after glide = %v, expected 1000", f)
	}
	mid := osc.Freq(testRate.N(75 * time.Millisecond))
	if mid <= 200 || mid >= 1000 {
		t.Errorf("mid-glide frequency = %v, expected between endpoints", mid)
	}
}

func TestSweepSquareValues(t *testing.T) {
	osc := NewSweep(100, 200, 50*time.Millisecond, 80*time.Millisecond, WaveSquare, testRate)

	for i, v := range drain(t, osc) {
		if v != -1.0 && v != 1.0 {
			t.Fatalf("square sample %d = %v, expected -1 or 1", i, v)
		}
	}
}

func TestGainRamp(t *testing.T) {
	g := NewGainRamp(nil, 0.2, 0.01, 100*time.Millisecond, testRate).(*gainRamp)

	if v := g.Gain(0); v != 0.2 {
		t.Errorf("initial gain = %v, expected 0.2", v)
	}
	if v := g.Gain(testRate.N(100 * time.Millisecond)); v != 0.01 {
		t.Errorf("gain after ramp = %v, expected 0.01", v)
	}
	if v := g.Gain(testRate.N(140 * time.Millisecond)); v != 0.01 {
		t.Errorf("gain should hold at 0.01, got %v", v)
	}
}

func TestEffectLengthsAndBounds(t *testing.T) {
	tests := []struct {
		name    string
		effect  func(beep.SampleRate, float64) beep.Streamer
		length  time.Duration
		maxGain float64
	}{
		{"block destroy", BlockDestroySound, BlockSoundLength, 0.2},
		{"ball collision", BallCollisionSound, ClickSoundLength, 0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(t, tc.effect(testRate, 1.0))

			if len(samples) != testRate.N(tc.length) {
				t.Errorf("effect has %d samples, expected %d", len(samples), testRate.N(tc.length))
			}

			var peak float64
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v))
			}
			if peak > tc.maxGain+1e-9 {
				t.Errorf("peak = %v, expected at most %v", peak, tc.maxGain)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
}

func TestEffectVolume(t *testing.T) {
	full := drain(t, BallCollisionSound(testRate, 1.0))
	half := drain(t, BallCollisionSound(testRate, 0.5))
	mute := drain(t, BallCollisionSound(testRate, 0))

	for i := range full {
		if math.Abs(half[i]-full[i]*0.5) > 1e-9 {
			t.Fatalf("sample %d: half volume %v, full %v", i, half[i], full[i])
		}
		if mute[i] != 0 {
			t.Fatalf("sample %d: zero volume should be silent, got %v", i, mute[i])
		}
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(config.DefaultBreakoutConfig().Audio)

	if sm.Enabled() {
		t.Error("sound manager should start disabled")
	}

	// Without a speaker these are no-ops
	sm.PlayBlockDestroy()
	sm.PlayBallCollision()
	sm.Cleanup()
}
