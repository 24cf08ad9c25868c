package system

import (
	"math"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// ResolvePair knocks back two overlapping players and separates them along the collision normal
// Each player recoils opposite its own heading; each is pushed half the penetration depth
func ResolvePair(a, b *component.Player) bool {
	delta := a.Pos.Sub(b.Pos)
	minDist := a.Radius + b.Radius
	distSq := delta.LenSq()
	if distSq >= minDist*minDist {
		return false
	}

	a.BeginKnockback(a.Heading+math.Pi, parameter.KnockbackSpeed, parameter.KnockbackDuration)
	b.BeginKnockback(b.Heading+math.Pi, parameter.KnockbackSpeed, parameter.KnockbackDuration)

	normal := delta.Normalize()
	if normal == (vmath.Vec2{}) {
		normal = vmath.V2(1, 0)
	}
	push := normal.Scale((minDist - math.Sqrt(distSq)) * 0.5)
	a.Pos = a.Pos.Add(push)
	b.Pos = b.Pos.Sub(push)
	return true
}

// ProjectileHit knocks a player along the projectile's travel direction, the projectile is unaffected
func ProjectileHit(pr *component.Projectile, p *component.Player) bool {
	if !vmath.CirclesOverlap(p.Pos, p.Radius, pr.Pos, pr.Radius) {
		return false
	}
	p.BeginKnockback(pr.Direction(), parameter.KnockbackSpeed, parameter.KnockbackDuration)
	return true
}
