package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/twentyfive/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveValue(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope around s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	if pos < e.attackSamples && e.attackSamples > 0 {
		return float64(pos) / float64(e.attackSamples)
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if pos >= releaseStart && e.releaseSamples > 0 {
		vol := float64(e.totalSamples-pos) / float64(e.releaseSamples)
		if vol < 0 {
			return 0
		}
		return vol
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// TickGenerator produces an endless tick-tock, one pair per TickCuePeriod
type TickGenerator struct {
	rate    beep.SampleRate
	pos     int
	period  int
	accent  int
	click   int
	attack  int
	release int
}

// NewTickGenerator creates the looping ticking sound played during a round
func NewTickGenerator(rate beep.SampleRate) *TickGenerator {
	return &TickGenerator{
		rate:    rate,
		period:  rate.N(constant.TickCuePeriod),
		accent:  rate.N(constant.TickCueAccentOffset),
		click:   rate.N(constant.TickCueClickLength),
		attack:  rate.N(constant.TickCueAttack),
		release: rate.N(constant.TickCueRelease),
	}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period

		var sample float64
		switch {
		case beatPos < g.click:
			sample = g.clickSample(beatPos, constant.TickCueFrequencyHz)
		case beatPos >= g.accent && beatPos < g.accent+g.click:
			sample = g.clickSample(beatPos-g.accent, constant.TockCueFrequencyHz)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// clickSample is one sample of a short enveloped sine burst
func (g *TickGenerator) clickSample(pos int, freq float64) float64 {
	t := float64(pos) / float64(g.rate)
	vol := 1.0
	if pos < g.attack && g.attack > 0 {
		vol = float64(pos) / float64(g.attack)
	} else if rem := g.click - pos; rem < g.release && g.release > 0 {
		vol = float64(rem) / float64(g.release)
	}
	return constant.TickCueAmplitude * vol * math.Sin(2*math.Pi*freq*t)
}

func (g *TickGenerator) Err() error { return nil }

// CreateTickSound returns the endless ticking loop
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(NewTickGenerator(rate), cfg.MasterVolume)
}

// CreateDoneSound generates a descending three-note buzzer for time's up
func CreateDoneSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, constant.DoneCueNotes*2)
	for i := 0; i < constant.DoneCueNotes; i++ {
		freq := constant.DoneCueFrequencyHz / math.Pow(2, float64(i)/12*2)
		osc := NewOscillator(freq, constant.DoneCueNoteDuration, WaveSquare, rate)
		shaped := NewEnvelope(osc, constant.DoneCueNoteDuration, constant.DoneCueAttack, constant.DoneCueRelease, rate)
		notes = append(notes, newVolume(shaped, constant.DoneCueAmplitude))
		if i < constant.DoneCueNotes-1 {
			notes = append(notes, beep.Silence(rate.N(constant.DoneCueNoteGap)))
		}
	}

	return newVolume(beep.Seq(notes...), cfg.MasterVolume)
}

// GetSoundEffect returns the synthesized streamer for the given cue
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundDone:
		return CreateDoneSound(cfg)
	default:
		return nil
	}
}
