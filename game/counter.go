package game

import (
	"github.com/lixenwraith/twentyfive/constant"
)

// CounterState is the word counter, saturating in [0, MaxWordCount]
type CounterState struct {
	Count int
}

// NewCounterState returns the launch state with all words left
func NewCounterState() CounterState {
	return CounterState{Count: constant.InitialWordCount}
}

// Max returns the fixed upper bound
func (s CounterState) Max() int {
	return constant.MaxWordCount
}

// Increment adds one word unless already at the bound
func (s CounterState) Increment() (CounterState, bool) {
	if s.Count >= constant.MaxWordCount {
		return s, false
	}
	s.Count++
	return s, true
}

// Decrement removes one word unless already at zero
func (s CounterState) Decrement() (CounterState, bool) {
	if s.Count <= 0 {
		return s, false
	}
	s.Count--
	return s, true
}

// Fill returns the gauge projection for the current count
func (s CounterState) Fill() FillProjection {
	return ProjectFill(s.Count)
}
