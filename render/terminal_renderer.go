package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-brawl/component"
	"github.com/lixenwraith/arena-brawl/engine"
	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// View is front-end state drawn alongside the round
type View struct {
	Picker    int    // Slot whose palette is open, -1 when closed
	Notice    string // Transient message, e.g. a rejected start
	Paused    bool
	SoundOn   bool
	Debug     bool
	DebugLine string
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		layout: NewLayout(w, h),
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Resize recomputes the layout
func (r *TerminalRenderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// Layout returns the current layout, used for mouse hit testing
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, view *View) {
	r.screen.Fill(' ', r.base)

	if r.layout.Visible {
		r.drawRing()
		r.drawProjectiles(snap)
		r.drawPlayers(snap)
	}
	r.drawBanner(snap, view)
	r.drawLegend(snap, view)
	if view.Picker >= 0 && snap.Phase == engine.PhaseEntry {
		r.drawPicker(snap, view.Picker)
	}
	r.drawStatus(snap, view)

	r.screen.Show()
}

// drawRing traces the stage boundary
func (r *TerminalRenderer) drawRing() {
	style := r.base.Foreground(RgbRing)
	steps := int(2*math.Pi*r.layout.RadiusX) * 2
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		col, row := Project(vmath.FromAngle(angle, parameter.StageRadius), r.layout)
		if r.layout.InBounds(col, row) {
			r.screen.SetContent(col, row, parameter.RingChar, nil, style)
		}
	}
}

// drawPlayers draws every claimed player; eliminated players fade to the background, shrink to a dot, then vanish
func (r *TerminalRenderer) drawPlayers(snap *engine.Snapshot) {
	for slot := range snap.Players {
		if !snap.Claimed[slot] {
			continue
		}
		p := &snap.Players[slot]
		if p.Hidden {
			continue
		}
		col, row := Project(p.Pos, r.layout)
		if !r.layout.InBounds(col, row) {
			continue
		}

		if p.State != component.StateOut {
			drawGlyph(r.screen, col, row, p.Glyph, r.base.Foreground(SlotColor(slot)))
			continue
		}

		progress := FadeProgress(snap.Now, p.OutAt)
		style := r.base.Foreground(FadeColor(slot, progress))
		if progress < 0.5 {
			drawGlyph(r.screen, col, row, p.Glyph, style)
		} else {
			r.screen.SetContent(col, row, parameter.FadeDotChar, nil, style)
		}
	}
}

// drawProjectiles draws an arrow pointing along each projectile's travel
func (r *TerminalRenderer) drawProjectiles(snap *engine.Snapshot) {
	style := r.base.Foreground(RgbProjectile)
	for i := range snap.Projectiles {
		pr := &snap.Projectiles[i]
		col, row := Project(pr.Pos, r.layout)
		if !r.layout.InBounds(col, row) {
			continue
		}
		glyph := parameter.ProjectileGlyphs[vmath.Octant(pr.Direction())]
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

// drawBanner shows the phase message on the top row
func (r *TerminalRenderer) drawBanner(snap *engine.Snapshot, view *View) {
	style := r.base.Foreground(RgbBanner).Bold(true)
	var text string

	switch snap.Phase {
	case engine.PhaseEntry:
		text = parameter.TextEntryHint
		if view.Picker >= 0 {
			text = parameter.TextPickerHint
		}
	case engine.PhaseBattle:
		text = parameter.TextBattleHint
		if snap.FireArmed {
			text = parameter.TextFireReady + "  " + text
			style = style.Foreground(RgbFireReady)
		}
		if view.Paused {
			text = "PAUSED"
		}
	case engine.PhaseResolution:
		if w := snap.Result.Winner; w >= 0 {
			text = snap.Players[w].Glyph + parameter.TextWinSuffix
			style = style.Foreground(SlotColor(w))
		} else {
			text = parameter.TextDraw
		}
		if snap.ResetArmed {
			text += "  " + parameter.TextResetHint
		}
	}

	if view.Notice != "" {
		text = view.Notice
		style = r.base.Foreground(RgbNotice).Bold(true)
	}
	drawCentered(r.screen, r.layout.Width, bannerRow, text, style)
}

// drawLegend lists every slot with its key and claimed glyph
func (r *TerminalRenderer) drawLegend(snap *engine.Snapshot, view *View) {
	row := r.layout.LegendRow()
	if row <= bannerRow {
		return
	}
	for slot := 0; slot < parameter.MaxPlayers; slot++ {
		x := r.layout.LegendX(slot)
		keyStyle := r.base.Foreground(SlotColor(slot))
		if slot == view.Picker {
			keyStyle = keyStyle.Reverse(true)
		}
		x += drawText(r.screen, x, row, r.layout.Width, fmt.Sprintf("[%c]", parameter.SlotKeys[slot]), keyStyle)
		x++
		if snap.Claimed[slot] {
			drawText(r.screen, x, row, r.layout.Width, snap.Players[slot].Glyph, keyStyle.Reverse(false))
		} else {
			drawText(r.screen, x, row, r.layout.Width, "--", r.base.Foreground(RgbEmptySlot))
		}
	}
}

// drawPicker lists the open slot's palette with the key choosing each glyph
func (r *TerminalRenderer) drawPicker(snap *engine.Snapshot, slot int) {
	row := r.layout.PickerRow()
	if row <= bannerRow {
		return
	}
	style := r.base.Foreground(SlotColor(slot))
	x := r.layout.LegendX(0)
	for i, glyph := range snap.Palettes[slot] {
		x += drawText(r.screen, x, row, r.layout.Width, fmt.Sprintf("%d:", i+1), style)
		x += drawText(r.screen, x, row, r.layout.Width, glyph, style)
		x += 2
	}
}

// drawStatus shows the debug line or the current round hints
func (r *TerminalRenderer) drawStatus(snap *engine.Snapshot, view *View) {
	row := r.layout.StatusRow()
	if row <= bannerRow {
		return
	}
	if view.Debug {
		line := fmt.Sprintf("%s t=%.1fs %s", snap.Phase, snap.Now.Seconds(), view.DebugLine)
		drawText(r.screen, 0, row, r.layout.Width, line, r.base.Foreground(RgbDebug))
		return
	}
	if !view.SoundOn {
		drawText(r.screen, 0, row, r.layout.Width, "muted", r.base.Foreground(RgbDebug))
	}
}
