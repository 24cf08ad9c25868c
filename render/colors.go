package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-brawl/parameter"
)

var (
	colBackground = mustHex(parameter.BackgroundColor)
	colRing       = mustHex(parameter.RingColor)

	RgbBackground = toTcell(colBackground)
	RgbRing       = toTcell(colRing)
	RgbProjectile = tcell.NewRGBColor(255, 255, 255) // White
	RgbBanner     = tcell.NewRGBColor(192, 202, 245) // Pale blue text
	RgbNotice     = tcell.NewRGBColor(255, 80, 80)   // Red for rejected actions
	RgbFireReady  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbDebug      = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbEmptySlot  = tcell.NewRGBColor(80, 80, 80)    // Dark gray

	slotColors [parameter.MaxPlayers]colorful.Color
)

func init() {
	for i, hex := range parameter.SlotColors {
		slotColors[i] = mustHex(hex)
	}
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("render: bad color " + hex)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SlotColor is the fixed tcell color of a slot
func SlotColor(slot int) tcell.Color {
	return toTcell(slotColors[slot])
}

// FadeColor blends the slot color toward the background by progress in [0,1]
func FadeColor(slot int, progress float64) tcell.Color {
	progress = min(max(progress, 0), 1)
	return toTcell(slotColors[slot].BlendLab(colBackground, progress))
}

// FadeProgress is the elapsed fraction of the elimination fade
func FadeProgress(now, outAt time.Duration) float64 {
	if parameter.FadeDuration <= 0 {
		return 1
	}
	p := float64(now-outAt) / float64(parameter.FadeDuration)
	return min(max(p, 0), 1)
}
