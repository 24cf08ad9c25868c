package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// drawGlyph draws the first grapheme cluster of s centered on col and returns its cell width
func drawGlyph(screen tcell.Screen, col, row int, s string, style tcell.Style) int {
	cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	x := col - (width-1)/2
	screen.SetContent(x, row, runes[0], runes[1:], style)
	return width
}

// drawText writes s cluster by cluster starting at col, clipped to limit columns
func drawText(screen tcell.Screen, col, row, limit int, s string, style tcell.Style) int {
	x := col
	state := -1
	var cluster string
	var width int
	for len(s) > 0 {
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if x+width > limit {
			break
		}
		runes := []rune(cluster)
		screen.SetContent(x, row, runes[0], runes[1:], style)
		x += max(width, 1)
	}
	return x - col
}

// drawCentered writes s centered on the row, truncated to the viewport width
func drawCentered(screen tcell.Screen, width, row int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	col := (width - uniseg.StringWidth(s)) / 2
	drawText(screen, max(col, 0), row, width, s, style)
}
