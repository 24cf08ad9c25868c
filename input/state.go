package input

// InputState tracks the entry picker
type InputState uint8

const (
	StateIdle       InputState = iota // Keys map straight to intents
	StatePickerOpen                   // Digit keys choose a glyph for the open slot
)
