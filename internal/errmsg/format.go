// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
	"os"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/player"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// File operations
	OpFileLoad   Op = "load file"
	OpFolderOpen Op = "open folder"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpVolumeChange  Op = "change volume"

	// Preferences
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Reason(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, Reason(err))
}

// Reason maps known error kinds to a short explanation and falls back to
// the error text.
func Reason(err error) string {
	switch {
	case errors.Is(err, loader.ErrUnsupportedFormat):
		return "unsupported audio format"
	case errors.Is(err, loader.ErrCorruptStream):
		return "file is damaged or truncated"
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	case errors.Is(err, loader.ErrIO):
		return "could not read file"
	case errors.Is(err, player.ErrDeviceUnavailable):
		return "audio device unavailable"
	case errors.Is(err, player.ErrInvalidCommand):
		return "not possible right now"
	}
	return err.Error()
}
