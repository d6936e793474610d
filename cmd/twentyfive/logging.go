package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "twentyfive.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log in the default directory
func setupLogging(debug bool) *os.File {
	return setupLoggingIn(logDir, debug)
}

// setupLoggingIn routes zerolog and the standard logger to dir/twentyfive.log.
// The terminal owns stdout and stderr, so with debug off all output is
// discarded. Returns nil when logging is disabled or the file can't be opened.
func setupLoggingIn(dir string, debug bool) *os.File {
	discard := func() {
		log.SetOutput(io.Discard)
		zlog.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if !debug {
		discard()
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		discard()
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("twentyfive_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discard()
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zlog.Logger = zerolog.New(f).With().Timestamp().Logger()
	zlog.Info().Str("path", logPath).Msg("logging started")
	return f
}
