package input

import (
	"github.com/gdamore/tcell/v2"
)

// Router turns tcell events into intents.
// While the text field has focus, Up/Down never reach the counter.
type Router struct {
	table       *KeyTable
	focus       Focus
	regions     []Region
	lastButtons tcell.ButtonMask
}

// NewRouter creates a router; nil table means the default bindings
func NewRouter(table *KeyTable) *Router {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Router{table: table}
}

// Focus returns the current keyboard focus
func (r *Router) Focus() Focus {
	return r.focus
}

// SetRegions replaces the clickable regions, normally after each layout
func (r *Router) SetRegions(regions []Region) {
	r.regions = regions
}

// Handle parses one event. Focus changes are applied before returning.
func (r *Router) Handle(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.applyFocus(r.handleKey(ev))
	case *tcell.EventMouse:
		return r.applyFocus(r.handleMouse(ev))
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

func (r *Router) handleKey(ev *tcell.EventKey) Intent {
	if r.focus == FocusText {
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: IntentTextChar, Char: ev.Rune()}
		}
		return Intent{Type: r.table.TextKeys[ev.Key()]}
	}

	if ev.Key() == tcell.KeyRune {
		return Intent{Type: r.table.NormalRunes[ev.Rune()]}
	}
	return Intent{Type: r.table.SpecialKeys[ev.Key()]}
}

// handleMouse fires on the press edge of the primary button only
func (r *Router) handleMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && r.lastButtons&tcell.Button1 == 0
	r.lastButtons = buttons
	if !pressed {
		return Intent{}
	}

	x, y := ev.Position()
	hit := HitTest(r.regions, x, y)

	// Clicking anywhere outside the field while editing confirms the name
	if r.focus == FocusText && hit != IntentFocusText {
		r.focus = FocusNone
	}
	return Intent{Type: hit}
}

func (r *Router) applyFocus(intent Intent) Intent {
	switch intent.Type {
	case IntentFocusText:
		r.focus = FocusText
	case IntentTextConfirm:
		r.focus = FocusNone
	}
	return intent
}
