// Package logging configures the zerolog logger. The TUI owns stdout, so
// logs go to a file under the user's state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Setup opens the log file and returns the configured logger plus a close
// function. The level string follows zerolog's names; an unknown level
// falls back to info.
func Setup(level string) (zerolog.Logger, func() error, error) {
	path, err := defaultLogPath()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	log := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return log, f.Close, nil
}

// Discard returns a logger that drops everything, for tests and for callers
// that could not open the log file.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// defaultLogPath resolves $XDG_STATE_HOME/lingua/lingua.log, falling back
// to ~/.local/state.
func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	dir := filepath.Join(stateHome, "lingua")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return filepath.Join(dir, "lingua.log"), nil
}
