package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/twentyfive/app"
	"github.com/lixenwraith/twentyfive/audio"
	"github.com/lixenwraith/twentyfive/config"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the log directory")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound cues")
	noMouseFlag = flag.Bool("no-mouse", false, "Disable mouse input")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if *noMouseFlag {
		cfg.Input.Mouse = false
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load key bindings: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLoggingIn(cfg.Logging.Dir, cfg.Logging.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTWENTYFIVE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		log.Error().Interface("panic", r).Msg("crashed")
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		// Playback calls are no-ops on an uninitialized manager
		log.Warn().Err(err).Msg("audio unavailable, continuing silent")
	} else {
		defer sounds.Cleanup()
	}

	a := app.New(screen, clockwork.NewRealClock(), sounds, app.Options{
		Mouse:   cfg.Input.Mouse,
		AudioOn: cfg.Audio.Enabled && sounds.IsInitialized(),
		Keys:    keys,
	})
	a.SetCrashHandler(crash)
	defer a.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("run failed")
	}
}
