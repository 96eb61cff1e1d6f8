// Package audio synthesizes the game's one-shot sound effects and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// ExpRamp interpolates exponentially from one positive value to another,
// frac in [0, 1]. Non-positive endpoints fall back to a linear ramp.
func ExpRamp(from, to, frac float64) float64 {
	frac = math.Max(0, math.Min(1, frac))
	if from <= 0 || to <= 0 {
		return from + (to-from)*frac
	}
	return from * math.Pow(to/from, frac)
}

// sweep is an oscillator whose frequency glides exponentially from one
// value to another, then holds the target until the duration ends.
type sweep struct {
	from, to float64
	sweepN   int
	total    int
	pos      int
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding from one frequency to another over
// glide, lasting duration in total.
func NewSweep(from, to float64, glide, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:   from,
		to:     to,
		sweepN: rate.N(glide),
		total:  rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

// Freq returns the oscillator frequency at sample position pos.
func (o *sweep) Freq(pos int) float64 {
	if o.sweepN <= 0 || pos >= o.sweepN {
		return o.to
	}
	return ExpRamp(o.from, o.to, float64(pos)/float64(o.sweepN))
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.Freq(o.pos) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// gainRamp scales a stream by a gain gliding exponentially from one value
// to another, then holding the target.
type gainRamp struct {
	streamer beep.Streamer
	from, to float64
	rampN    int
	pos      int
}

// NewGainRamp applies a gain envelope to s.
func NewGainRamp(s beep.Streamer, from, to float64, ramp time.Duration, rate beep.SampleRate) beep.Streamer {
	return &gainRamp{
		streamer: s,
		from:     from,
		to:       to,
		rampN:    rate.N(ramp),
	}
}

// Gain returns the gain at sample position pos.
func (g *gainRamp) Gain(pos int) float64 {
	if g.rampN <= 0 || pos >= g.rampN {
		return g.to
	}
	return ExpRamp(g.from, g.to, float64(pos)/float64(g.rampN))
}

func (g *gainRamp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := g.Gain(g.pos)
		samples[i][0] *= gain
		samples[i][1] *= gain
		g.pos++
	}
	return n, ok
}

func (g *gainRamp) Err() error { return g.streamer.Err() }

// newVolume wraps s in a volume effect.
// math.Log2(0) is -Inf, so zero volume is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
