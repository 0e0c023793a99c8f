package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"github.com/ik5/voicememo/device"
	"github.com/ik5/voicememo/session"
	"github.com/ik5/voicememo/store"
)

// logBackend writes to stderr, keeping stdout for command output, and to
// the rotating log file when one is configured.
type logBackend struct {
	stdErr     io.Writer
	logRotator *rotator.Rotator
}

func (bknd *logBackend) Write(b []byte) (int, error) {
	if bknd.stdErr != nil {
		bknd.stdErr.Write(b)
	}
	if bknd.logRotator != nil {
		bknd.logRotator.Write(b)
	}

	return len(b), nil
}

func (bknd *logBackend) Close() error {
	if bknd.logRotator == nil {
		return nil
	}

	return bknd.logRotator.Close()
}

// initLogging sets up the subsystem loggers and returns the one used by the
// command itself.
func initLogging(cfg *config) (slog.Logger, *logBackend, error) {
	bknd := &logBackend{stdErr: os.Stderr}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
			return slog.Disabled, nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		r, err := rotator.New(cfg.LogFile, 32*1024, true, 0)
		if err != nil {
			return slog.Disabled, nil, fmt.Errorf("failed to setup logfile %s: %w", cfg.LogFile, err)
		}
		bknd.logRotator = r
	}

	level, _ := slog.LevelFromString(cfg.DebugLevel)
	backend := slog.NewBackend(bknd, slog.WithFlags(slog.LUTC))
	newLogger := func(subsys string) slog.Logger {
		l := backend.Logger(subsys)
		l.SetLevel(level)
		return l
	}

	session.UseLogger(newLogger("SESS"))
	device.UseLogger(newLogger("DEVC"))
	store.UseLogger(newLogger("STOR"))

	return newLogger("MEMO"), bknd, nil
}
