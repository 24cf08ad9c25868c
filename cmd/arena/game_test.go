package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-brawl/audio"
	"github.com/lixenwraith/arena-brawl/config"
	"github.com/lixenwraith/arena-brawl/engine"
	"github.com/lixenwraith/arena-brawl/parameter"
)

type fakeSound struct {
	played  []audio.Sound
	enabled bool
}

func (f *fakeSound) Play(s audio.Sound)  { f.played = append(f.played, s) }
func (f *fakeSound) ToggleEnabled() bool { f.enabled = !f.enabled; return f.enabled }
func (f *fakeSound) Enabled() bool       { return f.enabled }

func (f *fakeSound) count(s audio.Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

type gameHarness struct {
	g     *game
	clock *engine.FrameClock
	sound *fakeSound
}

func newHarness(t *testing.T) *gameHarness {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)

	cfg := config.Default()
	cfg.Seed = 5
	clock := engine.NewFrameClock(time.Unix(0, 0), 20)
	sound := &fakeSound{enabled: true}
	return &gameHarness{g: newGame(s, cfg, sound, clock), clock: clock, sound: sound}
}

func (h *gameHarness) key(r rune) bool {
	return h.g.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *gameHarness) special(k tcell.Key) bool {
	return h.g.handleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

// frames advances the clock one 50ms step per frame
func (h *gameHarness) frames(n int) {
	for i := 0; i < n; i++ {
		h.clock.Step()
		h.g.frame()
	}
}

func TestEntrySelectAndPick(t *testing.T) {
	h := newHarness(t)

	h.key('3')
	if h.g.machine.Picker() != 2 {
		t.Fatalf("picker = %d, want 2", h.g.machine.Picker())
	}
	h.key('2')
	if !h.g.round.IsClaimed(2) {
		t.Fatal("slot 3 not claimed")
	}
	h.frames(1)
	if h.g.snap.Players[2].Glyph != h.g.round.Palette(2)[1] {
		t.Errorf("glyph = %q, want palette choice 2", h.g.snap.Players[2].Glyph)
	}

	// Selecting a claimed slot releases it
	h.key('3')
	if h.g.round.IsClaimed(2) || h.g.machine.Picker() != -1 {
		t.Error("claimed slot not released")
	}
}

func TestStartRejectedShowsNotice(t *testing.T) {
	h := newHarness(t)
	h.key('1')
	h.key('1')
	h.special(tcell.KeyEnter)
	h.frames(1)

	if h.g.view.Notice != parameter.TextNeedPlayers {
		t.Fatalf("notice = %q", h.g.view.Notice)
	}
	if h.sound.count(audio.SoundReject) != 1 {
		t.Errorf("reject sound played %d times", h.sound.count(audio.SoundReject))
	}

	h.frames(int(parameter.NoticeDuration / (50 * time.Millisecond)))
	if h.g.view.Notice != "" {
		t.Errorf("notice not cleared: %q", h.g.view.Notice)
	}
}

func TestBattleFireAndPause(t *testing.T) {
	h := newHarness(t)
	for _, slot := range []rune{'1', '4'} {
		h.key(slot)
		h.key('1')
	}
	h.key('b')
	if h.g.round.Phase() != engine.PhaseBattle {
		t.Fatalf("phase = %s", h.g.round.Phase())
	}

	h.key(' ')
	if h.sound.count(audio.SoundFire) != 0 {
		t.Fatal("fire accepted before reveal")
	}

	// The battle can resolve early under random motion; only check firing while it runs
	h.frames(int(parameter.FireRevealDelay / (50 * time.Millisecond)))
	if h.g.round.Phase() == engine.PhaseBattle {
		if h.sound.count(audio.SoundReady) != 1 {
			t.Errorf("ready sound played %d times", h.sound.count(audio.SoundReady))
		}
		h.key('f')
		h.frames(1)
		if h.sound.count(audio.SoundFire) != 1 {
			t.Errorf("fire sound played %d times", h.sound.count(audio.SoundFire))
		}
	}

	h.key('p')
	before := h.g.round.Now()
	h.frames(10)
	if h.g.round.Now() != before {
		t.Errorf("round clock advanced while paused: %v -> %v", before, h.g.round.Now())
	}
	h.key('p')
	h.frames(1)
	if h.g.round.Now() == before {
		t.Error("round clock frozen after resume")
	}
}

func TestMouseClickOpensPicker(t *testing.T) {
	h := newHarness(t)
	l := h.g.renderer.Layout()
	h.g.handleEvent(tcell.NewEventMouse(l.LegendX(5)+1, l.LegendRow(), tcell.Button1, tcell.ModNone))
	if h.g.machine.Picker() != 5 {
		t.Errorf("picker = %d, want 5", h.g.machine.Picker())
	}
}

func TestTogglesAndQuit(t *testing.T) {
	h := newHarness(t)

	h.key('d')
	h.frames(1)
	if !h.g.view.Debug || h.g.view.DebugLine == "" {
		t.Error("debug line not shown")
	}
	h.key('m')
	if h.g.view.SoundOn || h.sound.enabled {
		t.Error("sound not muted")
	}
	if !h.key('q') {
		t.Error("q did not quit")
	}
	if !h.special(tcell.KeyCtrlC) {
		t.Error("ctrl+c did not quit")
	}
}

func TestResizeRelayout(t *testing.T) {
	h := newHarness(t)
	h.g.screen.(tcell.SimulationScreen).SetSize(100, 40)
	h.g.handleEvent(tcell.NewEventResize(100, 40))
	if l := h.g.renderer.Layout(); l.Width != 100 || l.Height != 40 {
		t.Errorf("layout = %dx%d", l.Width, l.Height)
	}
}
