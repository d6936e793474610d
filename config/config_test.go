package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twentyfive/audio"
	"github.com/lixenwraith/twentyfive/input"
)

// chdirTemp runs the test from an empty directory so no stray .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 100 {
		t.Errorf("Unexpected audio defaults: %+v", cfg.Audio)
	}
	if !cfg.Input.Mouse {
		t.Error("Expected mouse enabled by default")
	}
	if cfg.Logging.Debug || cfg.Logging.Dir != "logs" {
		t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "twentyfive.yaml")
	writeFile(t, path, `
audio:
  volume: 40
  done_sound: /tmp/done.wav
input:
  mouse: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Volume != 40 {
		t.Errorf("Expected volume 40, got %d", cfg.Audio.Volume)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected unspecified audio.enabled to keep its default")
	}
	if cfg.Input.Mouse {
		t.Error("Expected mouse disabled from file")
	}
	if cfg.Audio.DoneSound != "/tmp/done.wav" {
		t.Errorf("Unexpected done sound %q", cfg.Audio.DoneSound)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "twentyfive.yaml")
	writeFile(t, path, "audio:\n  volume: 40\n")

	t.Setenv(EnvMasterVolume, "75")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMouse, "not-a-bool")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Volume != 75 {
		t.Errorf("Expected env volume 75, got %d", cfg.Audio.Volume)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if !cfg.Input.Mouse {
		t.Error("Expected invalid env value to be ignored")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, DefaultEnvFile), EnvDebug+"=true\n"+EnvLogDir+"=dotenv-logs\n")

	// godotenv sets process env; restore it afterwards
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvLogDir, "")
	os.Unsetenv(EnvDebug)
	os.Unsetenv(EnvLogDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Logging.Debug {
		t.Error("Expected debug enabled from .env")
	}
	if cfg.Logging.Dir != "dotenv-logs" {
		t.Errorf("Expected log dir from .env, got %q", cfg.Logging.Dir)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := chdirTemp(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "audio: [unclosed")
	if _, err := Load(bad); err == nil {
		t.Error("Expected parse error")
	}

	loud := filepath.Join(dir, "loud.yaml")
	writeFile(t, loud, "audio:\n  volume: 150\n")
	if _, err := Load(loud); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Expected ErrInvalidVolume, got %v", err)
	}
}

func TestAudioConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 50
	cfg.Audio.TickSound = "tick.wav"

	ac := cfg.AudioConfig()
	if ac.MasterVolume != 0.5 {
		t.Errorf("Expected master volume 0.5, got %f", ac.MasterVolume)
	}
	if ac.Files[audio.SoundTick] != "tick.wav" {
		t.Errorf("Expected tick file mapped, got %q", ac.Files[audio.SoundTick])
	}
	if _, ok := ac.Files[audio.SoundDone]; ok {
		t.Error("Expected no done file")
	}
}

func TestKeyBindingsFromYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "keys.yaml")
	writeFile(t, path, `
input:
  keys:
    normal:
      j: decrement
      k: increment
      q: none
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable failed: %v", err)
	}
	if kt.NormalRunes['j'] != input.IntentDecrement || kt.NormalRunes['k'] != input.IntentIncrement {
		t.Errorf("Expected j/k bound, got %v", kt.NormalRunes)
	}
	if _, ok := kt.NormalRunes['q']; ok {
		t.Error("Expected q unbound")
	}
	if kt.SpecialKeys[tcell.KeyUp] != input.IntentIncrement {
		t.Error("Expected default arrow bindings kept")
	}

	bad := filepath.Join(dir, "badkeys.yaml")
	writeFile(t, bad, "input:\n  keys:\n    normal:\n      x: explode\n")
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for unknown action")
	}
}
