package game

import (
	"time"

	"github.com/lixenwraith/twentyfive/constant"
)

// RollFrame is one rendered instant of a rolling digit pair.
// Offset is the slide progress in [0, 1): 0 shows Current in place, values
// towards 1 move Current up and out while Next moves in from below.
type RollFrame struct {
	Current int
	Next    int
	Offset  float64
}

// Roller animates a displayed number between values
type Roller struct {
	from      int
	to        int
	changedAt time.Time
}

// NewRoller returns a settled roller showing value
func NewRoller(value int) Roller {
	return Roller{from: value, to: value}
}

// Value is the latest value set
func (r Roller) Value() int {
	return r.to
}

// Set starts a slide to value at now. A slide still in progress is replaced.
func (r *Roller) Set(value int, now time.Time) {
	r.from = r.to
	r.to = value
	r.changedAt = now
}

// Reset jumps to value without a slide
func (r *Roller) Reset(value int) {
	r.from = value
	r.to = value
	r.changedAt = time.Time{}
}

// Sliding reports whether a slide is in progress at now
func (r Roller) Sliding(now time.Time) bool {
	if r.changedAt.IsZero() {
		return false
	}
	return now.Sub(r.changedAt) < constant.DigitSlideDuration
}

// Frame projects the roller at now
func (r Roller) Frame(now time.Time) RollFrame {
	if !r.Sliding(now) {
		return RollFrame{Current: r.to, Next: settledNext(r.to)}
	}

	elapsed := now.Sub(r.changedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return RollFrame{
		Current: r.from,
		Next:    r.to,
		Offset:  float64(elapsed) / float64(constant.DigitSlideDuration),
	}
}

// settledNext is the value waiting below a settled digit
func settledNext(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}
