package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeEvent(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestRouterGameKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"up", keyEvent(tcell.KeyUp), IntentIncrement},
		{"down", keyEvent(tcell.KeyDown), IntentDecrement},
		{"plus", runeEvent('+'), IntentIncrement},
		{"minus", runeEvent('-'), IntentDecrement},
		{"space", runeEvent(' '), IntentStartTimer},
		{"enter", keyEvent(tcell.KeyEnter), IntentStartTimer},
		{"q", runeEvent('q'), IntentQuit},
		{"escape", keyEvent(tcell.KeyEscape), IntentQuit},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC), IntentQuit},
		{"unbound", runeEvent('z'), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(nil)
			if got := r.Handle(tt.ev).Type; got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRouterTextFocusSuppressesArrows(t *testing.T) {
	r := NewRouter(nil)

	if got := r.Handle(runeEvent('t')).Type; got != IntentFocusText {
		t.Fatalf("Expected focus intent, got %v", got)
	}
	if r.Focus() != FocusText {
		t.Fatalf("Expected text focus, got %v", r.Focus())
	}

	if got := r.Handle(keyEvent(tcell.KeyUp)).Type; got != IntentNone {
		t.Errorf("Expected Up suppressed in text focus, got %v", got)
	}
	if got := r.Handle(keyEvent(tcell.KeyDown)).Type; got != IntentNone {
		t.Errorf("Expected Down suppressed in text focus, got %v", got)
	}

	in := r.Handle(runeEvent('q'))
	if in.Type != IntentTextChar || in.Char != 'q' {
		t.Errorf("Expected typed 'q', got %+v", in)
	}
	if got := r.Handle(keyEvent(tcell.KeyBackspace2)).Type; got != IntentTextBackspace {
		t.Errorf("Expected backspace, got %v", got)
	}

	if got := r.Handle(keyEvent(tcell.KeyEnter)).Type; got != IntentTextConfirm {
		t.Errorf("Expected confirm, got %v", got)
	}
	if r.Focus() != FocusNone {
		t.Error("Expected focus released after confirm")
	}
	if got := r.Handle(keyEvent(tcell.KeyUp)).Type; got != IntentIncrement {
		t.Errorf("Expected Up to increment after leaving the field, got %v", got)
	}
}

func TestRouterMouseRegions(t *testing.T) {
	r := NewRouter(nil)
	r.SetRegions([]Region{
		{X: 0, Y: 0, W: 10, H: 10, Intent: IntentStartTimer},
		{X: 20, Y: 0, W: 3, H: 1, Intent: IntentIncrement},
	})

	press := tcell.NewEventMouse(21, 0, tcell.Button1, tcell.ModNone)
	if got := r.Handle(press).Type; got != IntentIncrement {
		t.Errorf("Expected increment click, got %v", got)
	}

	// Held button dragging does not repeat the click
	drag := tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)
	if got := r.Handle(drag).Type; got != IntentNone {
		t.Errorf("Expected no intent while held, got %v", got)
	}

	r.Handle(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if got := r.Handle(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)).Type; got != IntentStartTimer {
		t.Errorf("Expected start click, got %v", got)
	}

	r.Handle(tcell.NewEventMouse(50, 50, tcell.ButtonNone, tcell.ModNone))
	if got := r.Handle(tcell.NewEventMouse(50, 50, tcell.Button1, tcell.ModNone)).Type; got != IntentNone {
		t.Errorf("Expected miss outside regions, got %v", got)
	}
}

func TestRouterClickOutsideReleasesFocus(t *testing.T) {
	r := NewRouter(nil)
	r.SetRegions([]Region{{X: 0, Y: 0, W: 5, H: 1, Intent: IntentFocusText}})

	r.Handle(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	if r.Focus() != FocusText {
		t.Fatal("Expected click on field to focus it")
	}
	r.Handle(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone))
	r.Handle(tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone))
	if r.Focus() != FocusNone {
		t.Error("Expected click elsewhere to release focus")
	}
}

func TestRouterResize(t *testing.T) {
	r := NewRouter(nil)
	in := r.Handle(tcell.NewEventResize(120, 40))
	if in.Type != IntentResize || in.Width != 120 || in.Height != 40 {
		t.Errorf("Unexpected resize intent %+v", in)
	}
}

func TestHitTestLastWins(t *testing.T) {
	regions := []Region{
		{X: 0, Y: 0, W: 10, H: 10, Intent: IntentStartTimer},
		{X: 2, Y: 2, W: 2, H: 2, Intent: IntentFocusText},
	}
	if got := HitTest(regions, 3, 3); got != IntentFocusText {
		t.Errorf("Expected overlapping later region, got %v", got)
	}
	if got := HitTest(regions, 9, 9); got != IntentStartTimer {
		t.Errorf("Expected base region, got %v", got)
	}
	if got := HitTest(regions, 10, 0); got != IntentNone {
		t.Errorf("Expected exclusive right edge, got %v", got)
	}
}
