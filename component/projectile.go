package component

import "github.com/lixenwraith/arena-brawl/vmath"

// Projectile is a straight-line hazard crossing the stage, velocity never changes after spawn
type Projectile struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// Direction returns the travel direction in radians
func (p *Projectile) Direction() float64 {
	return p.Vel.Angle()
}
