package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for each focus
type KeyTable struct {
	// Special keys (Ctrl+*, arrows) outside the text field
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings outside the text field
	NormalRunes map[rune]IntentType

	// Special keys while the text field has focus; runes become IntentTextChar
	TextKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentIncrement,
			tcell.KeyDown:   IntentDecrement,
			tcell.KeyEnter:  IntentStartTimer,
		},
		NormalRunes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentStartTimer,
			's': IntentStartTimer,
			'+': IntentIncrement,
			'=': IntentIncrement,
			'-': IntentDecrement,
			't': IntentFocusText,
		},
		TextKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEnter:      IntentTextConfirm,
			tcell.KeyEscape:     IntentTextConfirm,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
		},
	}
}
