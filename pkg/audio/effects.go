package audio

import (
	"math"

	"github.com/gopxl/beep/v2"
)

// BiquadFilter is a second-order IIR filter applied per stereo channel.
type BiquadFilter struct {
	streamer beep.Streamer

	// Normalised coefficients (already divided by a0)
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 [2]float64
	y1, y2 [2]float64
}

type filterKind int

const (
	lowPass filterKind = iota
	highPass
)

func newBiquad(kind filterKind, streamer beep.Streamer, sampleRate, cutoff, q float64) *BiquadFilter {
	omega := 2.0 * math.Pi * cutoff / sampleRate
	sn, cs := math.Sin(omega), math.Cos(omega)
	alpha := sn / (2.0 * q)

	var b0, b1, b2 float64
	switch kind {
	case lowPass:
		b0 = (1.0 - cs) / 2.0
		b1 = 1.0 - cs
		b2 = b0
	case highPass:
		b0 = (1.0 + cs) / 2.0
		b1 = -(1.0 + cs)
		b2 = b0
	}
	a0 := 1.0 + alpha

	return &BiquadFilter{
		streamer: streamer,
		b0:       b0 / a0,
		b1:       b1 / a0,
		b2:       b2 / a0,
		a1:       (-2.0 * cs) / a0,
		a2:       (1.0 - alpha) / a0,
	}
}

// NewLowPass creates a low-pass biquad.
func NewLowPass(streamer beep.Streamer, sampleRate, cutoff, q float64) *BiquadFilter {
	return newBiquad(lowPass, streamer, sampleRate, cutoff, q)
}

// NewHighPass creates a high-pass biquad.
func NewHighPass(streamer beep.Streamer, sampleRate, cutoff, q float64) *BiquadFilter {
	return newBiquad(highPass, streamer, sampleRate, cutoff, q)
}

func (f *BiquadFilter) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			x := samples[i][ch]
			y := f.b0*x + f.b1*f.x1[ch] + f.b2*f.x2[ch] - f.a1*f.y1[ch] - f.a2*f.y2[ch]

			f.x2[ch], f.x1[ch] = f.x1[ch], x
			f.y2[ch], f.y1[ch] = f.y1[ch], y

			samples[i][ch] = y
		}
	}
	return n, ok
}

func (f *BiquadFilter) Err() error {
	return f.streamer.Err()
}

// NewHeadsetFilter band-limits a streamer so callouts sound like they come over a cockpit intercom.
func NewHeadsetFilter(streamer beep.Streamer, sampleRate, lowCutoff, highCutoff float64) beep.Streamer {
	// Q=0.707 is a Butterworth response (flat passband)
	hp := NewHighPass(streamer, sampleRate, lowCutoff, 0.707)
	return NewLowPass(hp, sampleRate, highCutoff, 0.707)
}
