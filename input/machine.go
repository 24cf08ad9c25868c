package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	state    InputState
	keyTable *KeyTable
	picker   int // Slot whose palette is open, -1 when idle
	buttons  tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		state:    StateIdle,
		keyTable: DefaultKeyTable(),
		picker:   -1,
	}
}

// OpenPicker switches digit keys to glyph selection for slot
func (m *Machine) OpenPicker(slot int) {
	m.state = StatePickerOpen
	m.picker = slot
}

// Reset closes the picker
func (m *Machine) Reset() {
	m.state = StateIdle
	m.picker = -1
}

// Picker returns the slot whose palette is open, or -1
func (m *Machine) Picker() int {
	return m.picker
}

// State returns the current parser state
func (m *Machine) State() InputState {
	return m.state
}

// Process parses a tcell event and returns an Intent
// Returns nil for unbound input
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if m.state == StatePickerOpen && ev.Key() == tcell.KeyEscape {
			m.Reset()
			return &Intent{Type: IntentClosePicker}
		}
		if it, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return m.finish(&Intent{Type: it})
		}
		return nil
	}

	r := ev.Rune()
	if idx, ok := m.keyTable.SlotRunes[r]; ok {
		if m.state == StatePickerOpen {
			slot := m.picker
			m.Reset()
			return &Intent{Type: IntentPickGlyph, Slot: slot, Choice: idx}
		}
		return &Intent{Type: IntentSelectSlot, Slot: idx}
	}
	if it, ok := m.keyTable.Runes[r]; ok {
		return m.finish(&Intent{Type: it})
	}
	return nil
}

// finish closes the picker for intents that leave the entry selection
func (m *Machine) finish(intent *Intent) *Intent {
	switch intent.Type {
	case IntentStartOrReset, IntentQuit:
		m.Reset()
	}
	return intent
}

// processMouse reports a click only on the Button1 press edge; drag motion with the button held is ignored
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	held := m.buttons&tcell.Button1 != 0
	m.buttons = ev.Buttons()
	if m.buttons&tcell.Button1 == 0 || held {
		return nil
	}
	col, row := ev.Position()
	return &Intent{Type: IntentMouseClick, Col: col, Row: row}
}
