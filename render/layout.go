package render

import (
	"math"

	"github.com/lixenwraith/arena-brawl/parameter"
	"github.com/lixenwraith/arena-brawl/vmath"
)

// Legend geometry
const (
	legendCellWidth = 7 // "[1] 🐶 " plus gap
	bannerRow       = 0
)

// Layout maps the unit-disk stage onto a terminal viewport
// Recomputed from the viewport size on every resize; never touches simulation state
type Layout struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
	RadiusX float64 // Columns per stage unit, CellAspect × RadiusY
	RadiusY float64 // Rows per stage unit
	Visible bool    // Ring fits the viewport
}

// NewLayout sizes the stage to the largest ring that fits between the banner and legend rows
func NewLayout(width, height int) Layout {
	l := Layout{
		Width:   max(width, 0),
		Height:  max(height, 0),
		CenterX: width / 2,
		CenterY: height / 2,
	}

	top := bannerRow + 1
	bottom := height - 1 - parameter.StageMarginRows
	ry := (bottom - top) / 2
	if byWidth := int(float64(width-1) / (2 * parameter.CellAspect)); byWidth < ry {
		ry = byWidth
	}
	if ry < parameter.MinStageRadiusRows {
		return l
	}
	l.CenterY = top + ry
	l.RadiusY = float64(ry)
	l.RadiusX = l.RadiusY * parameter.CellAspect
	l.Visible = true
	return l
}

// Project converts a stage position into a cell
func Project(pos vmath.Vec2, l Layout) (col, row int) {
	col = l.CenterX + int(math.Round(pos.X/parameter.StageRadius*l.RadiusX))
	row = l.CenterY + int(math.Round(pos.Y/parameter.StageRadius*l.RadiusY))
	return col, row
}

// InBounds reports whether the cell lies inside the viewport
func (l Layout) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < l.Width && row < l.Height
}

// LegendRow is the row listing the slots
func (l Layout) LegendRow() int {
	return l.Height - 2
}

// PickerRow is the row listing the open palette
func (l Layout) PickerRow() int {
	return l.Height - 3
}

// StatusRow carries hints or the debug line
func (l Layout) StatusRow() int {
	return l.Height - 1
}

// LegendX is the first column of the slot's legend entry
func (l Layout) LegendX(slot int) int {
	start := (l.Width - legendCellWidth*parameter.MaxPlayers) / 2
	return max(start, 0) + slot*legendCellWidth
}

// LegendSlotAt returns the slot whose legend entry covers the cell, or -1
func (l Layout) LegendSlotAt(col, row int) int {
	if row != l.LegendRow() {
		return -1
	}
	for slot := 0; slot < parameter.MaxPlayers; slot++ {
		x := l.LegendX(slot)
		if col >= x && col < x+legendCellWidth-1 {
			return slot
		}
	}
	return -1
}
