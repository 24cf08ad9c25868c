package main

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-brawl/audio"
	"github.com/lixenwraith/arena-brawl/config"
	"github.com/lixenwraith/arena-brawl/core"
	"github.com/lixenwraith/arena-brawl/engine"
	"github.com/lixenwraith/arena-brawl/input"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/render"
	"github.com/lixenwraith/arena-brawl/status"
)

// soundPlayer is the audio surface used by the frame loop
type soundPlayer interface {
	Play(audio.Sound)
	ToggleEnabled() bool
	Enabled() bool
}

// eventSounds maps round events to effects; unlisted events are silent
var eventSounds = map[engine.EventKind]audio.Sound{
	engine.EventFire:      audio.SoundFire,
	engine.EventFireReady: audio.SoundReady,
	engine.EventCollision: audio.SoundCollision,
	engine.EventHit:       audio.SoundHit,
	engine.EventFall:      audio.SoundFall,
	engine.EventWin:       audio.SoundWin,
	engine.EventDraw:      audio.SoundDraw,
	engine.EventRejected:  audio.SoundReject,
}

// game wires the round to the terminal; every method runs on the frame loop goroutine
type game struct {
	screen   tcell.Screen
	round    *engine.Round
	renderer *render.TerminalRenderer
	machine  *input.Machine
	sound    soundPlayer
	src      engine.Clock
	clock    *engine.PausableClock
	stats    *status.Registry
	fps      int

	view        render.View
	noticeUntil time.Time
	snap        engine.Snapshot

	fpsGauge    *status.AtomicFloat
	fpsFrames   int
	fpsWindowAt time.Time
}

func newGame(screen tcell.Screen, cfg config.Config, sound soundPlayer, src engine.Clock) *game {
	stats := status.NewRegistry()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	return &game{
		screen:      screen,
		round:       engine.NewRound(engine.RoundConfig{Rand: rng, Motion: cfg.MotionMode(), Stats: stats}),
		renderer:    render.NewTerminalRenderer(screen),
		machine:     input.NewMachine(),
		sound:       sound,
		src:         src,
		clock:       engine.NewPausableClock(src, parameter.MaxFrameDelta),
		stats:       stats,
		fps:         cfg.FPS,
		view:        render.View{Picker: -1, SoundOn: sound.Enabled(), Debug: cfg.Debug},
		fpsGauge:    stats.Floats.Get(status.KeyFPS),
		fpsWindowAt: src.Now(),
	}
}

// run polls input on a separate goroutine and drives frames from a ticker until quit
func (g *game) run() error {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// handleEvent applies one terminal event and reports whether the game should quit
func (g *game) handleEvent(ev tcell.Event) bool {
	it := g.machine.Process(ev)
	if it == nil {
		return false
	}
	return g.handleIntent(it)
}

func (g *game) handleIntent(it *input.Intent) bool {
	switch it.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		g.renderer.Resize(g.screen.Size())
		g.screen.Sync()

	case input.IntentToggleDebug:
		g.view.Debug = !g.view.Debug

	case input.IntentToggleSound:
		g.view.SoundOn = g.sound.ToggleEnabled()

	case input.IntentTogglePause:
		g.view.Paused = g.clock.Toggle()

	case input.IntentSelectSlot:
		g.selectSlot(it.Slot)

	case input.IntentPickGlyph:
		g.round.Claim(it.Slot, it.Choice)

	case input.IntentStartOrReset:
		g.startOrReset()

	case input.IntentFire:
		if !g.view.Paused {
			g.round.Fire()
		}

	case input.IntentMouseClick:
		if slot := g.renderer.Layout().LegendSlotAt(it.Col, it.Row); slot >= 0 {
			g.selectSlot(slot)
		}
	}
	return false
}

// selectSlot releases a claimed slot or opens its picker
func (g *game) selectSlot(slot int) {
	if g.round.Phase() != engine.PhaseEntry {
		return
	}
	if g.round.IsClaimed(slot) {
		g.round.Unclaim(slot)
		g.machine.Reset()
		return
	}
	g.machine.OpenPicker(slot)
}

func (g *game) startOrReset() {
	switch g.round.Phase() {
	case engine.PhaseEntry:
		if err := g.round.Start(); errors.Is(err, engine.ErrNotEnoughPlayers) {
			g.notify(parameter.TextNeedPlayers)
		}
	case engine.PhaseResolution:
		g.round.Reset()
	}
}

func (g *game) notify(msg string) {
	g.view.Notice = msg
	g.noticeUntil = g.src.Now().Add(parameter.NoticeDuration)
}

// frame advances the round by the elapsed game time and redraws
func (g *game) frame() {
	g.round.Tick(g.clock.Delta())
	for _, ev := range g.round.DrainEvents() {
		g.dispatch(ev)
	}

	now := g.src.Now()
	if g.view.Notice != "" && !now.Before(g.noticeUntil) {
		g.view.Notice = ""
	}
	g.measureFPS(now)

	g.view.Picker = g.machine.Picker()
	if g.view.Debug {
		g.view.DebugLine = g.stats.Format()
	}
	g.round.Snapshot(&g.snap)
	g.renderer.RenderFrame(&g.snap, &g.view)
}

func (g *game) dispatch(ev engine.Event) {
	if s, ok := eventSounds[ev.Kind]; ok {
		g.sound.Play(s)
	}
	switch ev.Kind {
	case engine.EventStart, engine.EventReset:
		g.machine.Reset()
	case engine.EventRejected:
		log.Printf("start rejected with %d claimed", g.round.Claimed())
	}
}

func (g *game) measureFPS(now time.Time) {
	g.fpsFrames++
	elapsed := now.Sub(g.fpsWindowAt)
	if elapsed < time.Second {
		return
	}
	g.fpsGauge.Set(float64(g.fpsFrames) / elapsed.Seconds())
	g.fpsFrames = 0
	g.fpsWindowAt = now
}
