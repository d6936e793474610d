package game

import (
	"github.com/lixenwraith/twentyfive/constant"
)

// TickResult describes the effect of a tick on the timer
type TickResult uint8

const (
	// TickIgnored means the timer was inactive or already at zero
	TickIgnored TickResult = iota
	// TickAdvanced means one second elapsed
	TickAdvanced
	// TickExpired means the tick brought the timer to zero
	TickExpired
)

func (r TickResult) String() string {
	switch r {
	case TickAdvanced:
		return "advanced"
	case TickExpired:
		return "expired"
	default:
		return "ignored"
	}
}

// TimerState is the countdown with its dial.
// Active is true from Start until the End that follows expiry.
type TimerState struct {
	Remaining int
	Active    bool
	Dial      Dial
}

// NewTimerState returns an idle timer showing a full round
func NewTimerState() TimerState {
	return TimerState{Remaining: constant.TimerSeconds}
}

// Start begins a round; a running round is left untouched
func (s TimerState) Start() (TimerState, bool) {
	if s.Active {
		return s, false
	}
	s.Remaining = constant.TimerSeconds
	s.Active = true
	s.Dial.Reset()
	return s, true
}

// ElapsedSegment is the dial id the next tick completes
func (s TimerState) ElapsedSegment() int {
	return constant.TimerSeconds - s.Remaining + 1
}

// Tick advances the countdown by one second
func (s TimerState) Tick() (TimerState, TickResult) {
	if !s.Active || s.Remaining <= 0 {
		return s, TickIgnored
	}
	s.Dial.Complete(s.ElapsedSegment())
	s.Remaining--
	if s.Remaining == 0 {
		return s, TickExpired
	}
	return s, TickAdvanced
}

// End stops the round; ending an idle timer changes nothing
func (s TimerState) End() (TimerState, bool) {
	if !s.Active {
		return s, false
	}
	s.Active = false
	return s, true
}
