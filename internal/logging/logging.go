// Package logging opens the application's zerolog file logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "waves-lite"
	logFileName = "waves-lite.log"
)

// Open appends JSON log lines to $XDG_STATE_HOME/waves-lite/waves-lite.log.
// The terminal belongs to the TUI, so nothing is written to stdout/stderr.
func Open(level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	path, err := xdg.StateFile(filepath.Join(appName, logFileName))
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return OpenPath(path, level)
}

// OpenPath is Open with an explicit file path.
func OpenPath(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(f, level), f, nil
}

// New builds a timestamped logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
