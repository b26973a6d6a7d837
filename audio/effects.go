package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rolling/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential amplitude fall-off, the body of a percussive hit
type decay struct {
	streamer beep.Streamer
	position int
	rate     beep.SampleRate
	tau      float64 // Seconds to fall to 1/e
}

// NewDecay shapes a stream with exp(-t/tau)
func NewDecay(s beep.Streamer, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, tau: tau.Seconds()}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.rate)
		g := math.Exp(-t / d.tau)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps a stream with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateImpactSound synthesizes a short glassy knock: noise transient over two decaying partials
func CreateImpactSound(rate beep.SampleRate, length time.Duration, vol float64) beep.Streamer {
	transient := NewDecay(NewOscillator(0, length, WaveNoise, rate), 8*time.Millisecond, rate)
	low := NewDecay(NewOscillator(420, length, WaveSine, rate), 45*time.Millisecond, rate)
	high := NewDecay(NewOscillator(1870, length, WaveSine, rate), 25*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(transient, 0.35),
		newVolume(low, 0.45),
		newVolume(high, 0.2),
	)
	return newVolume(beep.Take(rate.N(length), mixed), vol)
}

// CreateWinSound generates a rising two-note chime
func CreateWinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewDecay(NewOscillator(659.25, 160*time.Millisecond, WaveSquare, rate), 80*time.Millisecond, rate)
	n2 := NewDecay(NewOscillator(987.77, 320*time.Millisecond, WaveSquare, rate), 140*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), vol*0.4)
}

// synthesize returns the generated streamer for a sound type, nil if unknown
func synthesize(st core.SoundType, rate beep.SampleRate, impactLength time.Duration, vol float64) beep.Streamer {
	switch st {
	case core.SoundImpact:
		return CreateImpactSound(rate, impactLength, vol)
	case core.SoundWin:
		return CreateWinSound(rate, vol)
	default:
		return nil
	}
}
