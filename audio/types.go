package audio

import (
	"errors"
)

// SoundType identifies an audio cue
type SoundType int

const (
	SoundTick SoundType = iota // Ticking loop while the round runs
	SoundDone                  // Time's up
	soundTypeCount
)

var soundTypeNames = [soundTypeCount]string{
	SoundTick: "tick",
	SoundDone: "done",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundTypeNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
