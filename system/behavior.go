package system

import (
	"time"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// NewPlayer places a ready player on the start ring at its slot angle
func NewPlayer(slot int, glyph string) *component.Player {
	angle := float64(slot) * parameter.SlotAngleStep
	return &component.Player{
		Slot:   slot,
		Color:  parameter.SlotColors[slot],
		Glyph:  glyph,
		Radius: parameter.PlayerScale * parameter.StageRadius,
		Pos:    vmath.FromAngle(angle, parameter.PlayerStartDistance),
		State:  component.StateReady,
	}
}

// Activate moves a ready player into the battle, heading at the origin for a random initial stretch
func (w *World) Activate(p *component.Player) {
	p.State = component.StateActive
	p.HasSaved = false
	p.Timer = w.randDuration(parameter.InitialMoveMin, parameter.InitialMoveSpan)
	p.SetHeading(p.Pos.AngleTo(vmath.Vec2{}), parameter.BaseSpeed)
}

// advanceBehavior runs the active/knockback timers for one frame
// Truncated frame lengths such as time.Second/60 leave nanoseconds behind, TimerSlack absorbs them
func (w *World) advanceBehavior(p *component.Player, dt time.Duration) {
	switch p.State {
	case component.StateActive:
		p.Timer -= dt
		if p.Timer <= parameter.TimerSlack {
			w.wander(p)
		}
	case component.StateKnockback:
		p.Timer -= dt
		if p.Timer <= parameter.TimerSlack {
			endKnockback(p)
		}
	}
}

// wander picks the next stretch: origin heading ± π/2
func (w *World) wander(p *component.Player) {
	toOrigin := p.Pos.AngleTo(vmath.Vec2{})
	turn := (w.Rand.Float64() - 0.5) * parameter.WanderTurnSpread
	p.Timer = w.randDuration(parameter.WanderMoveMin, parameter.WanderMoveSpan)
	p.SetHeading(toOrigin+turn, parameter.BaseSpeed)
}

// endKnockback resumes wandering on the saved heading; zero timer forces a decision next frame
func endKnockback(p *component.Player) {
	p.State = component.StateActive
	if p.HasSaved {
		p.Heading = p.SavedHeading
		p.HasSaved = false
	}
	p.Timer = 0
	p.SetHeading(p.Heading, parameter.BaseSpeed)
}

// checkFall eliminates a player beyond the fall threshold and freezes it in place
func checkFall(p *component.Player) bool {
	if p.Pos.LenSq() <= parameter.FallThreshold*parameter.FallThreshold {
		return false
	}
	p.State = component.StateOut
	p.Vel = vmath.Vec2{}
	p.Timer = 0
	return true
}
