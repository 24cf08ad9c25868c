package engine

import (
	"errors"
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/status"
	"github.com/lixenwraith/arena-brawl/system"
)

// ErrNotEnoughPlayers rejects a battle start with fewer than parameter.MinPlayers claimed slots
var ErrNotEnoughPlayers = errors.New("need at least 2 players to start")

// Phase is the round lifecycle stage
type Phase uint8

const (
	PhaseEntry      Phase = iota // Slots may be claimed and released
	PhaseBattle                  // Simulation running
	PhaseResolution              // Winner or draw decided, waiting for reset
)

func (p Phase) String() string {
	switch p {
	case PhaseEntry:
		return "entry"
	case PhaseBattle:
		return "battle"
	case PhaseResolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// Result is the outcome of a resolved round
type Result struct {
	Decided bool
	Winner  int // Slot of the winner, -1 on draw
}

// Draw reports a decided round without a winner
func (r Result) Draw() bool {
	return r.Decided && r.Winner < 0
}

// RoundConfig configures a Round
type RoundConfig struct {
	Rand   *rand.Rand // nil seeds from wall time
	Motion system.MotionMode
	Stats  *status.Registry // nil creates a private registry
}

// Round owns all mutable battle state and is its only writer
// Input handlers and the frame loop must call it from the same goroutine
type Round struct {
	id         uuid.UUID
	generation uint64
	phase      Phase
	running    bool
	fireArmed  bool
	resetArmed bool
	result     Result

	world    *system.World
	palettes [parameter.MaxPlayers]int
	clock    time.Duration
	sched    *Scheduler
	events   []Event

	stats       *status.Registry
	statFrames  *atomic.Int64
	statRounds  *atomic.Int64
	statCollide *atomic.Int64
	statHits    *atomic.Int64
	statFalls   *atomic.Int64
	statFired   *atomic.Int64
	statProj    *atomic.Int64
	statDraws   *atomic.Int64
}

// NewRound creates a round in the entry phase with freshly shuffled palettes
func NewRound(cfg RoundConfig) *Round {
	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	stats := cfg.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}

	r := &Round{
		world:       system.NewWorld(rng, cfg.Motion),
		sched:       NewScheduler(),
		events:      make([]Event, 0, 16),
		stats:       stats,
		statFrames:  stats.Ints.Get(status.KeyFrames),
		statRounds:  stats.Ints.Get(status.KeyRounds),
		statCollide: stats.Ints.Get(status.KeyCollisions),
		statHits:    stats.Ints.Get(status.KeyHits),
		statFalls:   stats.Ints.Get(status.KeyFalls),
		statFired:   stats.Ints.Get(status.KeyFired),
		statProj:    stats.Ints.Get(status.KeyProjectiles),
		statDraws:   stats.Ints.Get(status.KeyDraws),
	}
	r.beginEntry()
	return r
}

// beginEntry starts a fresh round identity; pending scheduled events from the previous generation fail their guards
func (r *Round) beginEntry() {
	r.generation++
	r.id = uuid.New()
	r.phase = PhaseEntry
	r.running = false
	r.fireArmed = false
	r.resetArmed = false
	r.result = Result{Winner: -1}
	r.world.Clear()
	r.palettes = ShufflePalettes(r.world.Rand)
	r.stats.Strings.Get(status.KeyRoundID).Store(r.id.String()[:8])
}

func (r *Round) ID() uuid.UUID             { return r.id }
func (r *Round) Phase() Phase              { return r.phase }
func (r *Round) Running() bool             { return r.running }
func (r *Round) FireArmed() bool           { return r.fireArmed }
func (r *Round) ResetArmed() bool          { return r.resetArmed }
func (r *Round) Result() Result            { return r.result }
func (r *Round) Now() time.Duration        { return r.clock }
func (r *Round) Claimed() int              { return r.world.Claimed() }
func (r *Round) Motion() system.MotionMode { return r.world.Motion }

// Palette returns the glyph set offered to slot this round
func (r *Round) Palette(slot int) [parameter.PaletteSize]string {
	return parameter.AvatarPalettes[r.palettes[slot]]
}

// IsClaimed reports whether slot holds a player
func (r *Round) IsClaimed(slot int) bool {
	return validSlot(slot) && r.world.Players[slot] != nil
}

// Claim places a player with the choice-th glyph of the slot's palette
// No-op outside the entry phase, on an occupied slot, or for an out of range slot/choice
func (r *Round) Claim(slot, choice int) bool {
	if r.phase != PhaseEntry || !validSlot(slot) || choice < 0 || choice >= parameter.PaletteSize {
		return false
	}
	if r.world.Players[slot] != nil {
		return false
	}
	glyph := r.Palette(slot)[choice]
	r.world.Players[slot] = system.NewPlayer(slot, glyph)
	r.emit(EventClaim, slot, -1)
	return true
}

// Unclaim releases a slot during entry
func (r *Round) Unclaim(slot int) bool {
	if r.phase != PhaseEntry || !r.IsClaimed(slot) {
		return false
	}
	r.world.Players[slot] = nil
	r.emit(EventUnclaim, slot, -1)
	return true
}

// Start moves every claimed player into the battle
// Returns ErrNotEnoughPlayers when fewer than two slots are claimed; outside entry it is a no-op
func (r *Round) Start() error {
	if r.phase != PhaseEntry {
		return nil
	}
	n := r.world.Claimed()
	if n < parameter.MinPlayers {
		r.emit(EventRejected, -1, -1)
		return ErrNotEnoughPlayers
	}

	r.world.Projectiles = r.world.Projectiles[:0]
	for _, p := range r.world.Players {
		if p != nil {
			r.world.Activate(p)
		}
	}
	r.phase = PhaseBattle
	r.running = true
	r.fireArmed = false
	r.statRounds.Add(1)
	r.emit(EventStart, -1, -1)
	log.Printf("round %s: battle started with %d players (motion=%s)", r.id, n, r.world.Motion)

	r.sched.After(parameter.FireRevealDelay, "fire-reveal", r.battleGuard(), r.armFire)
	return nil
}

// Fire launches a projectile when the fire control is armed, then re-arms it after the cooldown
func (r *Round) Fire() bool {
	if r.phase != PhaseBattle || !r.running || !r.fireArmed {
		return false
	}
	r.world.SpawnProjectile()
	r.fireArmed = false
	r.statFired.Add(1)
	r.emit(EventFire, -1, -1)
	r.sched.After(parameter.FireCooldown, "fire-rearm", r.battleGuard(), r.armFire)
	return true
}

// Reset clears the finished round and returns to entry with new palettes
// No-op until the reset control is exposed after resolution
func (r *Round) Reset() bool {
	if r.phase != PhaseResolution || !r.resetArmed {
		return false
	}
	prev := r.id
	r.beginEntry()
	r.emit(EventReset, -1, -1)
	log.Printf("round %s: reset, next round %s", prev, r.id)
	return true
}

// Tick advances the round clock by dt, fires due scheduled events and steps the simulation while running
func (r *Round) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	r.clock += dt
	r.sched.Advance(r.clock)

	if !r.running {
		return
	}
	r.statFrames.Add(1)

	rep := system.Step(r.world, dt)
	for _, pair := range rep.Collisions {
		r.statCollide.Add(1)
		r.emit(EventCollision, pair[0], pair[1])
	}
	for _, slot := range rep.Hits {
		r.statHits.Add(1)
		r.emit(EventHit, slot, -1)
	}
	for _, slot := range rep.Falls {
		r.eliminate(slot)
	}
	r.statProj.Store(int64(len(r.world.Projectiles)))

	if rep.Resolved {
		r.resolve(rep.Winner)
	}
}

// eliminate records the fall time and schedules the end of the fade
func (r *Round) eliminate(slot int) {
	p := r.world.Players[slot]
	p.OutAt = r.clock
	r.statFalls.Add(1)
	r.emit(EventFall, slot, -1)
	log.Printf("round %s: slot %d %s fell at %v", r.id, slot, p.Glyph, r.clock)

	gen := r.generation
	r.sched.After(parameter.FadeDuration, "fade-hide",
		func() bool { return r.generation == gen && r.world.Players[slot] == p },
		func() { p.Hidden = true },
	)
}

// resolve stops the simulation and schedules exposure of the reset control
func (r *Round) resolve(winner int) {
	r.running = false
	r.phase = PhaseResolution
	r.fireArmed = false
	r.result = Result{Decided: true, Winner: winner}

	if winner >= 0 {
		r.emit(EventWin, winner, -1)
		log.Printf("round %s: slot %d %s wins at %v", r.id, winner, r.world.Players[winner].Glyph, r.clock)
	} else {
		r.statDraws.Add(1)
		r.emit(EventDraw, -1, -1)
		log.Printf("round %s: draw at %v", r.id, r.clock)
	}

	gen := r.generation
	r.sched.After(parameter.ResetDelay, "reset-reveal",
		func() bool { return r.generation == gen && r.phase == PhaseResolution },
		func() {
			r.resetArmed = true
			r.emit(EventResetReady, -1, -1)
		},
	)
}

// battleGuard captures the current generation; the event is valid only while that battle runs
func (r *Round) battleGuard() func() bool {
	gen := r.generation
	return func() bool {
		return r.generation == gen && r.phase == PhaseBattle && r.running
	}
}

func (r *Round) armFire() {
	r.fireArmed = true
	r.emit(EventFireReady, -1, -1)
}

func (r *Round) emit(kind EventKind, slot, other int) {
	r.events = append(r.events, Event{Kind: kind, Slot: slot, Other: other, At: r.clock})
}

// DrainEvents returns events emitted since the last drain
func (r *Round) DrainEvents() []Event {
	if len(r.events) == 0 {
		return nil
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	r.events = r.events[:0]
	return out
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < parameter.MaxPlayers
}

// Snapshot is a read-only copy of round state for rendering
type Snapshot struct {
	RoundID     uuid.UUID
	Phase       Phase
	Now         time.Duration
	Running     bool
	FireArmed   bool
	ResetArmed  bool
	Result      Result
	Claimed     [parameter.MaxPlayers]bool
	Players     [parameter.MaxPlayers]component.Player
	Palettes    [parameter.MaxPlayers][parameter.PaletteSize]string
	Projectiles []component.Projectile
}

// Snapshot copies current state into dst, reusing its projectile buffer
func (r *Round) Snapshot(dst *Snapshot) {
	dst.RoundID = r.id
	dst.Phase = r.phase
	dst.Now = r.clock
	dst.Running = r.running
	dst.FireArmed = r.fireArmed
	dst.ResetArmed = r.resetArmed
	dst.Result = r.result
	for i, p := range r.world.Players {
		dst.Claimed[i] = p != nil
		if p != nil {
			dst.Players[i] = *p
		} else {
			dst.Players[i] = component.Player{}
		}
		dst.Palettes[i] = r.Palette(i)
	}
	dst.Projectiles = dst.Projectiles[:0]
	for _, pr := range r.world.Projectiles {
		dst.Projectiles = append(dst.Projectiles, *pr)
	}
}
