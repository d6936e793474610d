package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/twentyfive/constant"
)

// Cues is what the game needs from audio. Implementations never fail loudly:
// playback problems are logged and the game continues silent.
type Cues interface {
	PlayTickStart()
	StopTick()
	PlayDone()
}

// SoundManager plays the round cues through the beep speaker
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	files       map[SoundType]*beep.Buffer
	tickControl *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager; nil config means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		files:  make(map[SoundType]*beep.Buffer),
	}
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Initialize opens the speaker and loads configured cue files.
// A cue file that fails to load falls back to the synthesized sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	for soundType, path := range sm.config.Files {
		if path == "" {
			continue
		}
		buffer, err := LoadWAV(path, rate)
		if err != nil {
			log.Warn().Err(err).Stringer("sound", soundType).Msg("using synthesized cue")
			continue
		}
		sm.files[soundType] = buffer
	}

	if err := speaker.Init(rate, rate.N(constant.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.detachTick()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayTickStart starts the ticking loop from its beginning
func (sm *SoundManager) PlayTickStart() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := sm.streamer(SoundTick)
	if err != nil {
		log.Debug().Err(err).Msg("tick cue rejected")
		return
	}

	speaker.Lock()
	// Restart rather than layer a second loop
	sm.detachTick()
	sm.tickControl = &beep.Ctrl{Streamer: streamer}
	sm.mixer.Add(sm.tickControl)
	speaker.Unlock()
}

// StopTick silences the ticking loop
func (sm *SoundManager) StopTick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.tickControl == nil {
		return
	}

	speaker.Lock()
	sm.detachTick()
	speaker.Unlock()
}

// detachTick pauses the tick loop and drops it from the mixer.
// A paused Ctrl still streams silence, so its Streamer is cleared: the mixer
// removes a Ctrl whose Streamer is nil on the next pass.
// Callers hold sm.mu and the speaker lock.
func (sm *SoundManager) detachTick() {
	if sm.tickControl == nil {
		return
	}
	sm.tickControl.Paused = true
	sm.tickControl.Streamer = nil
	sm.tickControl = nil
}

// PlayDone plays the time's up cue once
func (sm *SoundManager) PlayDone() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := sm.streamer(SoundDone)
	if err != nil {
		log.Debug().Err(err).Msg("done cue rejected")
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// streamer returns a fresh stream for a cue: the loaded file from its start,
// looped for the tick cue, or the synthesized sound
func (sm *SoundManager) streamer(soundType SoundType) (beep.Streamer, error) {
	if buffer, ok := sm.files[soundType]; ok {
		var s beep.Streamer = buffer.Streamer(0, buffer.Len())
		if soundType == SoundTick {
			s = beep.Loop(-1, buffer.Streamer(0, buffer.Len()))
		}
		return newVolume(s, sm.config.MasterVolume), nil
	}
	s := GetSoundEffect(soundType, sm.config)
	if s == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSound, soundType)
	}
	return s, nil
}
