package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/status"
	"github.com/lixenwraith/arena-brawl/system"
)

// HeadlessConfig drives a round without a terminal
type HeadlessConfig struct {
	Players     int
	FPS         int
	Motion      system.MotionMode
	Seed        uint64
	AutoFire    bool          // Fire whenever the control is armed
	MaxDuration time.Duration // 0 uses parameter.MaxRoundDuration
	Stats       *status.Registry
}

// Outcome summarizes a headless round
type Outcome struct {
	RoundID  uuid.UUID
	Winner   int // -1 on draw or timeout
	Glyph    string
	Draw     bool
	Timeout  bool
	Duration time.Duration
	Frames   int
}

// ctxCheckFrames is how often the headless loop polls for cancellation
const ctxCheckFrames = 60

// RunHeadless claims random slots, starts the battle and ticks at a fixed rate until resolution or timeout
func RunHeadless(ctx context.Context, cfg HeadlessConfig) (Outcome, error) {
	if cfg.Players > parameter.MaxPlayers {
		return Outcome{}, fmt.Errorf("players %d exceeds %d slots", cfg.Players, parameter.MaxPlayers)
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	maxDuration := cfg.MaxDuration
	if maxDuration <= 0 {
		maxDuration = parameter.MaxRoundDuration
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	r := NewRound(RoundConfig{Rand: rng, Motion: cfg.Motion, Stats: cfg.Stats})

	slots := rng.Perm(parameter.MaxPlayers)
	for _, slot := range slots[:max(cfg.Players, 0)] {
		r.Claim(slot, rng.IntN(parameter.PaletteSize))
	}
	if err := r.Start(); err != nil {
		return Outcome{}, err
	}

	clock := NewFrameClock(time.Time{}, fps)
	out := Outcome{RoundID: r.ID(), Winner: -1}
	for r.Phase() == PhaseBattle {
		if out.Frames%ctxCheckFrames == 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		if r.Now() >= maxDuration {
			out.Timeout = true
			break
		}
		r.Tick(clock.Step())
		if cfg.AutoFire {
			r.Fire()
		}
		out.Frames++
	}
	r.DrainEvents()

	out.Duration = r.Now()
	if res := r.Result(); res.Decided {
		out.Winner = res.Winner
		out.Draw = res.Draw()
		if res.Winner >= 0 {
			out.Glyph = r.world.Players[res.Winner].Glyph
		}
	}
	return out, nil
}
