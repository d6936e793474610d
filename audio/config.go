package audio

import (
	"github.com/lixenwraith/twentyfive/constant"
)

// AudioConfig holds audio settings resolved by the config package
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int

	// Optional WAV files replacing the synthesized cues
	Files map[SoundType]string
}

// DefaultAudioConfig returns synthesized cues at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constant.AudioSampleRate,
		Files:        make(map[SoundType]string),
	}
}
