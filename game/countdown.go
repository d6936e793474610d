package game

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/twentyfive/constant"
)

// Countdown drives a TimerState from a clock.
// It owns the one-second ticker and the post-expiry grace timer but never
// mutates state on its own goroutine: the owner's event loop receives from
// Ticks and Grace and calls Tick and End.
//
// End stops and drains a pending grace timer, so a grace fire cannot reach
// the loop after the round ended. End is idempotent.
type Countdown struct {
	clock  clockwork.Clock
	state  TimerState
	ticker clockwork.Ticker
	grace  clockwork.Timer
}

// NewCountdown creates an idle countdown on the given clock.
// In production use clockwork.NewRealClock(), in tests a FakeClock.
func NewCountdown(clock clockwork.Clock) *Countdown {
	return &Countdown{
		clock: clock,
		state: NewTimerState(),
	}
}

// State returns a copy of the current timer state
func (c *Countdown) State() TimerState {
	return c.state
}

// Active reports whether a round is running
func (c *Countdown) Active() bool {
	return c.state.Active
}

// Start begins a round and its tick source. Returns false if already running.
func (c *Countdown) Start() bool {
	next, ok := c.state.Start()
	if !ok {
		return false
	}
	c.state = next
	c.ticker = c.clock.NewTicker(constant.TickInterval)

	log.Debug().Int("remaining", c.state.Remaining).Msg("countdown started")
	return true
}

// Ticks delivers one value per TickInterval while a round runs; nil otherwise
func (c *Countdown) Ticks() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.Chan()
}

// Grace fires once EndGraceDelay after expiry; nil when no end is pending
func (c *Countdown) Grace() <-chan time.Time {
	if c.grace == nil {
		return nil
	}
	return c.grace.Chan()
}

// Tick applies one elapsed second. On expiry the grace timer is armed.
func (c *Countdown) Tick() TickResult {
	next, res := c.state.Tick()
	c.state = next

	switch res {
	case TickAdvanced:
		log.Debug().Int("remaining", c.state.Remaining).Msg("tick")
	case TickExpired:
		c.grace = c.clock.NewTimer(constant.EndGraceDelay)
		log.Debug().Dur("grace", constant.EndGraceDelay).Msg("countdown expired")
	}
	return res
}

// End stops the round and releases the ticker. Returns false if nothing was running.
func (c *Countdown) End() bool {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.grace != nil {
		stopAndDrainTimer(c.grace)
		c.grace = nil
	}

	next, ok := c.state.End()
	c.state = next
	if ok {
		log.Debug().Msg("countdown ended")
	}
	return ok
}

// stopAndDrainTimer stops a timer and empties its channel if it already fired
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
