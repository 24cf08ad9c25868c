package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linear volume in [0,1]; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// createFireSound is a rising zap
func createFireSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return NewEnvelope(NewSweep(300, 1200, d, WaveSaw, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
}

// createCollisionSound is a short thud
func createCollisionSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, 60*time.Millisecond, WaveSine, rate), 0.6)
}

// createHitSound mixes a noise burst over a low square
func createHitSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	noise := newVolume(tone(0, d, WaveNoise, rate), 0.4)
	return beep.Mix(noise, tone(160, d, WaveSquare, rate))
}

// createFallSound is a falling whistle
func createFallSound(rate beep.SampleRate) beep.Streamer {
	d := 400 * time.Millisecond
	return NewEnvelope(NewSweep(880, 110, d, WaveSine, rate), d, 10*time.Millisecond, 150*time.Millisecond, rate)
}

// createWinSound is a rising major arpeggio
func createWinSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, 120*time.Millisecond, WaveSquare, rate)
	}
	return newVolume(beep.Seq(parts...), 0.5)
}

// createDrawSound is two flat descending tones
func createDrawSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(392, 200*time.Millisecond, WaveSaw, rate),
		tone(294, 300*time.Millisecond, WaveSaw, rate),
	), 0.5)
}

// createRejectSound is a short low buzz
func createRejectSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(100, 150*time.Millisecond, WaveSquare, rate), 0.4)
}

// createReadySound is a short high ping when the fire control arms
func createReadySound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	sine, err := generators.SineTone(rate, 880)
	if err != nil {
		return tone(880, d, WaveSine, rate)
	}
	return newVolume(NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.5)
}

// soundBuilders indexes effect constructors by Sound
var soundBuilders = [soundCount]func(beep.SampleRate) beep.Streamer{
	SoundFire:      createFireSound,
	SoundCollision: createCollisionSound,
	SoundHit:       createHitSound,
	SoundFall:      createFallSound,
	SoundWin:       createWinSound,
	SoundDraw:      createDrawSound,
	SoundReject:    createRejectSound,
	SoundReady:     createReadySound,
}

// NewSoundStream builds a fresh streamer for s, or nil for an unknown sound
func NewSoundStream(s Sound, rate beep.SampleRate) beep.Streamer {
	if s >= soundCount {
		return nil
	}
	return soundBuilders[s](rate)
}
