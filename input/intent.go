package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates non-movement actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // q, Esc, Ctrl+C
	IntentPause   // p
	IntentRestart // r
	IntentMute    // m
)

// KeyTable maps keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'r': IntentRestart,
			'm': IntentMute,
		},
	}
}

// Classify returns the intent bound to a key event
func (kt *KeyTable) Classify(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
