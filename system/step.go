package system

import (
	"time"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
)

// Report summarizes what happened during one Step
type Report struct {
	// Resolved is set when at most one live player remained at the start of the frame
	Resolved bool
	// Winner is the sole live slot on resolution, -1 for a draw or an unresolved frame
	Winner int

	Collisions [][2]int // Player pairs that collided, lower slot first
	Hits       []int    // Slots hit by a projectile
	Falls      []int    // Slots eliminated this frame
	Despawned  int
}

// Step advances the world by one frame of dt
// Players are processed in slot order: behavior, integration, pairwise collision, fall check
// Projectiles move after players and always win against them
func Step(w *World, dt time.Duration) Report {
	r := Report{Winner: -1}

	live := w.LivePlayers()
	if len(live) <= 1 {
		r.Resolved = true
		if len(live) == 1 {
			r.Winner = live[0].Slot
		}
		return r
	}

	var seen [parameter.MaxPlayers][parameter.MaxPlayers]bool
	for _, p := range w.Players {
		if p == nil || !p.State.Live() {
			continue
		}

		w.advanceBehavior(p, dt)
		p.Pos = p.Pos.Add(w.displace(p.Vel, dt))

		for _, other := range w.Players {
			if other == nil || other == p || !other.State.Live() {
				continue
			}
			if ResolvePair(p, other) {
				a, b := orderedPair(p, other)
				if !seen[a][b] {
					seen[a][b] = true
					r.Collisions = append(r.Collisions, [2]int{a, b})
				}
			}
		}

		if checkFall(p) {
			r.Falls = append(r.Falls, p.Slot)
		}
	}

	w.advanceProjectiles(dt, &r)
	return r
}

func orderedPair(a, b *component.Player) (int, int) {
	if a.Slot < b.Slot {
		return a.Slot, b.Slot
	}
	return b.Slot, a.Slot
}
