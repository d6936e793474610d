// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and TWENTYFIVE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/twentyfive/audio"
	"github.com/lixenwraith/twentyfive/input"
)

// Environment variable names
const (
	EnvAudioEnabled = "TWENTYFIVE_AUDIO_ENABLED"
	EnvMasterVolume = "TWENTYFIVE_MASTER_VOLUME"
	EnvTickSound    = "TWENTYFIVE_TICK_SOUND"
	EnvDoneSound    = "TWENTYFIVE_DONE_SOUND"
	EnvMouse        = "TWENTYFIVE_MOUSE"
	EnvDebug        = "TWENTYFIVE_DEBUG"
	EnvLogDir       = "TWENTYFIVE_LOG_DIR"
)

// DefaultEnvFile is loaded if present
const DefaultEnvFile = ".env"

var (
	ErrInvalidVolume = errors.New("master volume must be within 0-100")
	ErrEmptyLogDir   = errors.New("log directory must not be empty")
)

type Config struct {
	Audio   AudioSection   `yaml:"audio"`
	Input   InputSection   `yaml:"input"`
	Logging LoggingSection `yaml:"logging"`
}

type AudioSection struct {
	Enabled   bool   `yaml:"enabled"`
	Volume    int    `yaml:"volume"` // percent
	TickSound string `yaml:"tick_sound"`
	DoneSound string `yaml:"done_sound"`
}

type InputSection struct {
	Mouse bool `yaml:"mouse"`

	// Binding overrides by section (normal, normal_keys, text_keys), key name to action
	Keys map[string]map[string]string `yaml:"keys"`
}

type LoggingSection struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		Audio:   AudioSection{Enabled: true, Volume: 100},
		Input:   InputSection{Mouse: true},
		Logging: LoggingSection{Dir: "logs"},
	}
}

// Load resolves configuration. An empty path skips the YAML file; a missing
// .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// applyEnv overrides fields from the environment; unparsable values are ignored
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = n
		}
	}
	if v := os.Getenv(EnvTickSound); v != "" {
		c.Audio.TickSound = v
	}
	if v := os.Getenv(EnvDoneSound); v != "" {
		c.Audio.DoneSound = v
	}
	if v := os.Getenv(EnvMouse); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Input.Mouse = b
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = b
		}
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		c.Logging.Dir = v
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidVolume, c.Audio.Volume)
	}
	if c.Logging.Dir == "" {
		return ErrEmptyLogDir
	}
	if _, err := input.LoadKeyConfig(c.Input.Keys); err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	return nil
}

// KeyTable returns the default bindings with configured overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Input.Keys)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.Volume) / 100.0
	if c.Audio.TickSound != "" {
		ac.Files[audio.SoundTick] = c.Audio.TickSound
	}
	if c.Audio.DoneSound != "" {
		ac.Files[audio.SoundDone] = c.Audio.DoneSound
	}
	return ac
}
