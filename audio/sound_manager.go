package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// masterVolume scales every effect
	masterVolume = 0.5
)

// SoundManager manages all game audio
// Safe to use without Initialize; every call is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(enabled bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device silent
	sm.initialized = false
}

// Play mixes a new instance of s into the output
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}
	st := NewSoundStream(s, sampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(st, masterVolume))
	speaker.Unlock()
}

// ToggleEnabled flips muting and returns the new state
func (sm *SoundManager) ToggleEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = !sm.enabled
	if !sm.enabled && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.enabled
}

// Enabled reports whether sounds are played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
