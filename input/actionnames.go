package input

// bindableActions maps config action names to intents a key may trigger.
// Resize and text_char come from the terminal itself and can't be bound.
var bindableActions = map[string]IntentType{
	"none":           IntentNone, // unbind
	"quit":           IntentQuit,
	"start_timer":    IntentStartTimer,
	"increment":      IntentIncrement,
	"decrement":      IntentDecrement,
	"focus_text":     IntentFocusText,
	"text_backspace": IntentTextBackspace,
	"text_confirm":   IntentTextConfirm,
}

// ActionIntent resolves a config action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := bindableActions[name]
	return it, ok
}

// ActionNames returns all bindable action names
func ActionNames() []string {
	names := make([]string, 0, len(bindableActions))
	for name := range bindableActions {
		names = append(names, name)
	}
	return names
}
