package system

import (
	"math"
	"time"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// SpawnProjectile launches a projectile from a uniformly random angle outside the stage
func (w *World) SpawnProjectile() *component.Projectile {
	return w.SpawnProjectileAt(w.Rand.Float64() * 2 * math.Pi)
}

// SpawnProjectileAt launches a projectile from angle, aimed through the origin
func (w *World) SpawnProjectileAt(angle float64) *component.Projectile {
	pr := &component.Projectile{
		Pos:    vmath.FromAngle(angle, parameter.ProjectileSpawnDistance),
		Vel:    vmath.FromAngle(angle, -parameter.ProjectileSpeed),
		Radius: parameter.ProjectileRadius,
	}
	w.Projectiles = append(w.Projectiles, pr)
	return pr
}

// advanceProjectiles moves projectiles, applies hits to live players and drops those past the despawn distance
func (w *World) advanceProjectiles(dt time.Duration, r *Report) {
	const despawnSq = parameter.ProjectileDespawnDistance * parameter.ProjectileDespawnDistance

	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.Pos = pr.Pos.Add(w.displace(pr.Vel, dt))

		for _, p := range w.Players {
			if p == nil || !p.State.Live() {
				continue
			}
			if ProjectileHit(pr, p) {
				r.Hits = append(r.Hits, p.Slot)
			}
		}

		if pr.Pos.LenSq() > despawnSq {
			r.Despawned++
			continue
		}
		kept = append(kept, pr)
	}
	for i := len(kept); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = kept
}
