// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a streamer producing duration worth of wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear fade in over attack and fade out over release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound identifies an effect.
type Sound int

const (
	SoundFood Sound = iota
	SoundMilestone
	SoundPucci
	SoundGameOver
)

const (
	foodDuration      = 70 * time.Millisecond
	milestoneDuration = 900 * time.Millisecond
	gameOverNote      = 180 * time.Millisecond
)

// foodPitch rises a semitone per point for the first two octaves.
func foodPitch(score int) float64 {
	return 523.25 * math.Pow(2, float64(min(max(score, 0), 24))/12)
}

// FoodSound is a short blip whose pitch follows the score.
func FoodSound(score int, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(foodPitch(score), foodDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, foodDuration, 5*time.Millisecond, 40*time.Millisecond, rate), 0.35)
}

// MilestoneSound is a noise burst under a major chord. The PUCCI variant
// uses a saw chord a tritone lower.
func MilestoneSound(level int, rate beep.SampleRate) beep.Streamer {
	root, wave := 440.0, WaveSine
	if level >= 20 {
		root, wave = 311.13, WaveSaw
	}

	noise := NewEnvelope(NewOscillator(0, milestoneDuration, WaveNoise, rate),
		milestoneDuration, 2*time.Millisecond, 600*time.Millisecond, rate)

	chord := beep.Mix(
		newVolume(NewEnvelope(NewOscillator(root, milestoneDuration, wave, rate), milestoneDuration, 20*time.Millisecond, 500*time.Millisecond, rate), 0.4),
		newVolume(NewEnvelope(NewOscillator(root*1.25, milestoneDuration, wave, rate), milestoneDuration, 20*time.Millisecond, 500*time.Millisecond, rate), 0.3),
		newVolume(NewEnvelope(NewOscillator(root*1.5, milestoneDuration, wave, rate), milestoneDuration, 20*time.Millisecond, 500*time.Millisecond, rate), 0.3),
	)

	return beep.Mix(newVolume(noise, 0.25), newVolume(chord, 0.6))
}

// GameOverSound is three descending saw notes.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{392.00, 311.13, 196.00}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, gameOverNote, WaveSaw, rate)
		parts = append(parts, NewEnvelope(osc, gameOverNote, 5*time.Millisecond, 80*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(parts...), 0.4)
}
