package engine

import (
	"sync"
	"time"
)

// FrameClock is a manually driven Clock that steps on exact frame boundaries
// Frame k ends at start + k/fps seconds, so individual steps differ by at most 1ns
type FrameClock struct {
	mu    sync.Mutex
	start time.Time
	fps   time.Duration
	frame time.Duration
	extra time.Duration
}

// NewFrameClock creates a clock at start stepping fps frames per second
func NewFrameClock(start time.Time, fps int) *FrameClock {
	if fps <= 0 {
		fps = 1
	}
	return &FrameClock{start: start, fps: time.Duration(fps)}
}

func (c *FrameClock) boundary(frame time.Duration) time.Duration {
	return time.Second * frame / c.fps
}

// Now returns the current clock time
func (c *FrameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start.Add(c.boundary(c.frame) + c.extra)
}

// Step advances one frame and returns its length
func (c *FrameClock) Step() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	dt := c.boundary(c.frame+1) - c.boundary(c.frame)
	c.frame++
	return dt
}

// Advance moves the clock by an arbitrary duration off the frame grid
func (c *FrameClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extra += d
}
