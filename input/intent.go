package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C, Esc with no picker open
	IntentResize      // Terminal resize event
	IntentToggleDebug // d
	IntentToggleSound // m
	IntentTogglePause // p

	// Entry stage
	IntentSelectSlot  // 1-6: claim or release a slot
	IntentPickGlyph   // 1-6 while a picker is open
	IntentClosePicker // Esc while a picker is open

	// Round control
	IntentStartOrReset // Enter, b
	IntentFire         // Space, f

	// Mouse
	IntentMouseClick // Left-click, resolved against the legend by the caller
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentResize:       "resize",
	IntentToggleDebug:  "toggle-debug",
	IntentToggleSound:  "toggle-sound",
	IntentTogglePause:  "toggle-pause",
	IntentSelectSlot:   "select-slot",
	IntentPickGlyph:    "pick-glyph",
	IntentClosePicker:  "close-picker",
	IntentStartOrReset: "start-or-reset",
	IntentFire:         "fire",
	IntentMouseClick:   "mouse-click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Slot   int // Target slot for slot and glyph intents
	Choice int // Palette index for IntentPickGlyph
	Col    int // Mouse cell
	Row    int
}
