package component

import (
	"time"

	"github.com/lixenwraith/arena-brawl/vmath"
)

// PlayerState is the behavioral state of a combatant
type PlayerState uint8

const (
	StateReady     PlayerState = iota // Claimed, waiting for battle start
	StateActive                       // Autonomous wandering
	StateKnockback                    // Forced straight-line motion after a hit
	StateOut                          // Eliminated, terminal for the round
)

var stateNames = [...]string{"ready", "active", "knockback", "out"}

func (s PlayerState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Live reports whether the state takes part in collisions and win checks
func (s PlayerState) Live() bool {
	return s == StateActive || s == StateKnockback
}

// Player is one combatant occupying a slot for the round
type Player struct {
	Slot   int
	Color  string // Hex color, fixed per slot
	Glyph  string // Avatar grapheme chosen from the slot's palette
	Radius float64

	Pos vmath.Vec2
	Vel vmath.Vec2

	State PlayerState
	Timer time.Duration // Remaining time in the current behavior

	Heading      float64 // Current wander heading in radians
	SavedHeading float64 // Heading to resume after knockback
	HasSaved     bool

	OutAt  time.Duration // Round clock time of elimination
	Hidden bool          // Fade finished, no longer drawn
}

// BeginKnockback forces the player into knockback moving along dir at speed
// The pre-collision heading is saved only when entering from a non-knockback state
func (p *Player) BeginKnockback(dir, speed float64, duration time.Duration) {
	if p.State != StateKnockback {
		p.SavedHeading = p.Heading
		p.HasSaved = true
	}
	p.State = StateKnockback
	p.Timer = duration
	p.Vel = vmath.FromAngle(dir, speed)
}

// SetHeading points the player along heading at speed
func (p *Player) SetHeading(heading, speed float64) {
	p.Heading = heading
	p.Vel = vmath.FromAngle(heading, speed)
}
