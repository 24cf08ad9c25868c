package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return
}

// TestOscillatorSine verifies sine wave generation and termination
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}

	total, peak := drain(t, osc)
	if total+n != rate.N(100*time.Millisecond) {
		t.Errorf("total samples = %d, want %d", total+n, rate.N(100*time.Millisecond))
	}
	if peak > 1 {
		t.Errorf("peak %f out of range", peak)
	}
}

// TestEnvelopeShape verifies attack starts silent and the stream is bounded
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(200, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("attack start = %f, want 0", samples[0][0])
	}
	if math.Abs(samples[3][0]) >= 1 {
		t.Errorf("attack not ramping: %f", samples[3][0])
	}
}

// TestSoundStreamsFinite verifies every effect ends and stays in range
func TestSoundStreamsFinite(t *testing.T) {
	rate := beep.SampleRate(22050)
	for s := Sound(0); s < soundCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st := NewSoundStream(s, rate)
			if st == nil {
				t.Fatal("nil stream")
			}
			total, peak := drain(t, st)
			if total == 0 {
				t.Error("empty sound")
			}
			if total > rate.N(2*time.Second) {
				t.Errorf("sound too long: %d samples", total)
			}
			if peak > 1.5 {
				t.Errorf("peak %f", peak)
			}
		})
	}
	if NewSoundStream(soundCount, rate) != nil {
		t.Error("unknown sound built a stream")
	}
}

// TestVolumeSilent verifies zero volume mutes the stream
func TestVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	v := newVolume(NewOscillator(440, 50*time.Millisecond, WaveSaw, rate), 0)
	_, peak := drain(t, v)
	if peak != 0 {
		t.Errorf("silent volume peak = %f", peak)
	}
}
