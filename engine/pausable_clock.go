package engine

import (
	"sync"
	"time"
)

// PausableClock turns wall time into frame deltas that stop advancing while paused
// The input goroutine may toggle pause while the frame loop reads deltas
type PausableClock struct {
	mu sync.Mutex

	source   Clock
	maxDelta time.Duration

	last            time.Time // Wall time of the previous Delta call
	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock reading source, clamping each delta to maxDelta (0 disables clamping)
func NewPausableClock(source Clock, maxDelta time.Duration) *PausableClock {
	return &PausableClock{
		source:   source,
		maxDelta: maxDelta,
		last:     source.Now(),
	}
}

// Delta returns game time elapsed since the previous call, zero while paused
func (pc *PausableClock) Delta() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	if pc.paused {
		pc.last = now
		return 0
	}

	dt := now.Sub(pc.last)
	pc.last = now
	if dt < 0 {
		return 0
	}
	if pc.maxDelta > 0 && dt > pc.maxDelta {
		dt = pc.maxDelta
	}
	return dt
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement; time spent paused is never returned by Delta
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	now := pc.source.Now()
	pc.totalPausedTime += now.Sub(pc.pauseStart)
	pc.paused = false
	pc.last = now
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
