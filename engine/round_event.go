package engine

import "time"

// EventKind classifies round events consumed by the front end
type EventKind uint8

const (
	EventClaim EventKind = iota
	EventUnclaim
	EventStart
	EventRejected // Start refused, too few players
	EventFireReady
	EventFire
	EventCollision // Slot and Other collided
	EventHit       // Slot hit by a projectile
	EventFall
	EventWin
	EventDraw
	EventResetReady
	EventReset
)

var eventNames = [...]string{
	"claim", "unclaim", "start", "rejected", "fire-ready", "fire",
	"collision", "hit", "fall", "win", "draw", "reset-ready", "reset",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a notable round occurrence, Slot/Other are -1 when not applicable
type Event struct {
	Kind  EventKind
	Slot  int
	Other int
	At    time.Duration
}
