// Package game holds the pure state of the 25 words widget: the countdown
// timer with its dial, the saturating word counter, and the projections that
// turn numeric state into something a renderer can draw.
//
// State types are values. Transitions return the next state together with a
// flag or result describing what changed, so they can be tested without a
// screen or a clock. Countdown is the only type that touches time; it drives
// TimerState from an injected clockwork.Clock.
package game
