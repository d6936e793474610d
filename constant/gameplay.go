package constant

import "time"

// Countdown Timer
const (
	// TimerSeconds is the length of one round
	TimerSeconds = 45

	// TickInterval is the period of the countdown tick source
	TickInterval = 1 * time.Second

	// EndGraceDelay lets the last digit slide finish before the round ends
	EndGraceDelay = 300 * time.Millisecond

	// DialSegments is the number of dial markers, one per second
	DialSegments = TimerSeconds
)

// Word Counter
const (
	// MaxWordCount is the upper saturation bound of the word counter
	MaxWordCount = 25

	// InitialWordCount is the count shown at launch, all words left
	InitialWordCount = MaxWordCount

	// ButtonFlashDuration is how long a counter button stays highlighted after a press
	ButtonFlashDuration = 150 * time.Millisecond
)

// Fill colour thresholds, inclusive upper bounds
const (
	FillRedMax    = 3
	FillOrangeMax = 6
	FillYellowMax = 10
)

// Digit Roller
const (
	// DigitSlideDuration matches the 300ms slide of the current/next digit pair
	DigitSlideDuration = 300 * time.Millisecond
)
