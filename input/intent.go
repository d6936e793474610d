package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Game intents
	IntentStartTimer // Space, Enter, s, click on the dial
	IntentIncrement  // Up arrow, +, click on [+]
	IntentDecrement  // Down arrow, -, click on [-]

	// Team name field
	IntentFocusText     // t, click on the name field
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter or Esc, leaves the field
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentResize:        "resize",
	IntentStartTimer:    "start_timer",
	IntentIncrement:     "increment",
	IntentDecrement:     "decrement",
	IntentFocusText:     "focus_text",
	IntentTextChar:      "text_char",
	IntentTextBackspace: "text_backspace",
	IntentTextConfirm:   "text_confirm",
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
	Type IntentType
	Char rune // Typed char for IntentTextChar

	// Terminal size for IntentResize
	Width  int
	Height int
}
