package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]map[string]string{
		SectionNormal:     {"j": "decrement", "k": "increment", "space": "none"},
		SectionNormalKeys: {"F5": "start_timer"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if kt.NormalRunes['j'] != IntentDecrement || kt.NormalRunes['k'] != IntentIncrement {
		t.Errorf("Expected j/k bound, got %v", kt.NormalRunes)
	}
	if it, ok := kt.NormalRunes[' ']; !ok || it != IntentNone {
		t.Errorf("Expected space alias to unbind, got %v %v", it, ok)
	}
	if kt.SpecialKeys[tcell.KeyF5] != IntentStartTimer {
		t.Errorf("Expected F5 to start the timer, got %v", kt.SpecialKeys[tcell.KeyF5])
	}
	if kt.TextKeys != nil {
		t.Error("Expected absent section to stay nil")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		sections map[string]map[string]string
	}{
		{"unknown section", map[string]map[string]string{"overlay": {"a": "quit"}}},
		{"unknown action", map[string]map[string]string{SectionNormal: {"a": "fire"}}},
		{"multi-char rune", map[string]map[string]string{SectionNormal: {"ab": "quit"}}},
		{"unknown key name", map[string]map[string]string{SectionTextKeys: {"Hyper": "quit"}}},
		{"unbindable action", map[string]map[string]string{SectionNormal: {"x": "resize"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig(tt.sections); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyConfig(map[string]map[string]string{
		SectionNormal: {"j": "decrement", "q": "none"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	merged := MergeKeyTable(base, override)
	if merged.NormalRunes['j'] != IntentDecrement {
		t.Error("Expected j bound after merge")
	}
	if _, ok := merged.NormalRunes['q']; ok {
		t.Error("Expected q unbound after merge")
	}
	if merged.SpecialKeys[tcell.KeyUp] != IntentIncrement {
		t.Error("Expected untouched sections to keep defaults")
	}
	if base.NormalRunes['q'] != IntentQuit {
		t.Error("Expected base table unchanged")
	}
}
