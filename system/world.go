package system

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// MotionMode selects how velocity turns into displacement each frame
type MotionMode uint8

const (
	// MotionFrame applies velocity once per frame regardless of dt, speeds are tuned for ReferenceFPS
	MotionFrame MotionMode = iota
	// MotionScaled scales velocity by dt relative to ReferenceFPS
	MotionScaled
)

func (m MotionMode) String() string {
	if m == MotionScaled {
		return "scaled"
	}
	return "frame"
}

// ParseMotionMode maps a config value to a mode, unknown values fall back to MotionFrame
func ParseMotionMode(s string) (MotionMode, bool) {
	switch s {
	case "", "frame":
		return MotionFrame, true
	case "scaled":
		return MotionScaled, true
	default:
		return MotionFrame, false
	}
}

// World is the plain simulation state advanced by Step
// Owned by a single writer; no internal locking
type World struct {
	Players     [parameter.MaxPlayers]*component.Player
	Projectiles []*component.Projectile
	Rand        *rand.Rand
	Motion      MotionMode
}

// NewWorld creates an empty world drawing randomness from rng
func NewWorld(rng *rand.Rand, motion MotionMode) *World {
	return &World{
		Projectiles: make([]*component.Projectile, 0, 8),
		Rand:        rng,
		Motion:      motion,
	}
}

// Clear removes all players and projectiles
func (w *World) Clear() {
	for i := range w.Players {
		w.Players[i] = nil
	}
	w.Projectiles = w.Projectiles[:0]
}

// LivePlayers returns players currently active or in knockback, in slot order
func (w *World) LivePlayers() []*component.Player {
	live := make([]*component.Player, 0, parameter.MaxPlayers)
	for _, p := range w.Players {
		if p != nil && p.State.Live() {
			live = append(live, p)
		}
	}
	return live
}

// Claimed returns the number of occupied slots
func (w *World) Claimed() int {
	n := 0
	for _, p := range w.Players {
		if p != nil {
			n++
		}
	}
	return n
}

// displace converts a per-frame velocity into this frame's displacement
func (w *World) displace(vel vmath.Vec2, dt time.Duration) vmath.Vec2 {
	if w.Motion == MotionScaled {
		return vel.Scale(dt.Seconds() * parameter.ReferenceFPS)
	}
	return vel
}

// randDuration returns min + U[0,1) * span
func (w *World) randDuration(min, span time.Duration) time.Duration {
	return min + time.Duration(w.Rand.Float64()*float64(span))
}
