//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/player"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error keeps its text",
			op:       OpFolderOpen,
			err:      errors.New("not a directory"),
			expected: "Failed to open folder: not a directory",
		},
		{
			name:     "unsupported format",
			op:       OpFileLoad,
			err:      &loader.DecodeError{Path: "a.aiff", Err: loader.ErrUnsupportedFormat},
			expected: "Failed to load file: unsupported audio format",
		},
		{
			name:     "corrupt stream",
			op:       OpFileLoad,
			err:      fmt.Errorf("decode: %w", loader.ErrCorruptStream),
			expected: "Failed to load file: file is damaged or truncated",
		},
		{
			name:     "missing file wins over io",
			op:       OpFileLoad,
			err:      fmt.Errorf("%w: %w", loader.ErrIO, fs.ErrNotExist),
			expected: "Failed to load file: file not found",
		},
		{
			name:     "device unavailable",
			op:       OpPlaybackStart,
			err:      fmt.Errorf("%w: no card", player.ErrDeviceUnavailable),
			expected: "Failed to start playback: audio device unavailable",
		},
		{
			name:     "invalid command",
			op:       OpPlaybackSeek,
			err:      player.ErrInvalidCommand,
			expected: "Failed to seek: not possible right now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileLoad,
			context:  "song.wav",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpFileLoad,
			context:  "song.wav",
			err:      loader.ErrCorruptStream,
			expected: "Failed to load file 'song.wav': file is damaged or truncated",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpStateSave,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to save state: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
