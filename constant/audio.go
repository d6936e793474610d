package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// SpeakerBufferDuration determines latency of the beep speaker
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Tick Cue (looped while the round is running)
const (
	TickCuePeriod       = 1 * time.Second
	TickCueClickLength  = 30 * time.Millisecond
	TickCueFrequencyHz  = 1200.0
	TockCueFrequencyHz  = 900.0
	TickCueAttack       = 2 * time.Millisecond
	TickCueRelease      = 20 * time.Millisecond
	TickCueAmplitude    = 0.35
	TickCueAccentOffset = 500 * time.Millisecond
)

// Done Cue (time's up buzzer)
const (
	DoneCueNoteDuration = 220 * time.Millisecond
	DoneCueNoteGap      = 60 * time.Millisecond
	DoneCueNotes        = 3
	DoneCueFrequencyHz  = 440.0
	DoneCueAttack       = 5 * time.Millisecond
	DoneCueRelease      = 80 * time.Millisecond
	DoneCueAmplitude    = 0.5
)
