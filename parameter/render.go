package parameter

import "time"

// Terminal layout
const (
	// CellAspect is the horizontal stretch applied to compensate for tall terminal cells
	CellAspect = 2.0

	// StageMarginRows are reserved below the ring for the picker, legend and status rows
	StageMarginRows = 3

	// MinStageRadiusRows is the smallest ring drawn, below it only the banner is shown
	MinStageRadiusRows = 4

	// RingChar draws the stage boundary
	RingChar = '·'

	// FadeDotChar replaces a player glyph during the second half of the fade
	FadeDotChar = '•'

	// BackgroundColor is the blend target for fading players
	BackgroundColor = "#1A1B26"

	// RingColor is the stage boundary color
	RingColor = "#565F89"
)

// Frame pacing
const (
	// DefaultFPS drives the interactive frame ticker
	DefaultFPS = 60

	// MaxFrameDelta clamps a single frame's dt after stalls (suspend, debugger)
	MaxFrameDelta = 100 * time.Millisecond
)

// Banners
const (
	TextEntryHint   = "1-6 claim/unclaim  ENTER battle  q quit"
	TextPickerHint  = "pick 1-6  ESC cancel"
	TextBattleHint  = "SPACE fire"
	TextFireReady   = "FIRE READY"
	TextResetHint   = "ENTER reset"
	TextDraw        = "DRAW"
	TextWinSuffix   = " WIN!"
	TextNeedPlayers = "need at least 2 players"
	NoticeDuration  = 2 * time.Second
)
