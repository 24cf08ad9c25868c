package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents outside the picker
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType

	// SlotRunes select slots in idle state and glyphs while the picker is open
	SlotRunes map[rune]int
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEnter:  IntentStartOrReset,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'b': IntentStartOrReset,
			' ': IntentFire,
			'f': IntentFire,
			'd': IntentToggleDebug,
			'm': IntentToggleSound,
			'p': IntentTogglePause,
		},
		SlotRunes: map[rune]int{
			'1': 0, '2': 1, '3': 2, '4': 3, '5': 4, '6': 5,
		},
	}
}
