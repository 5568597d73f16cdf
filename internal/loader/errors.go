package loader

import (
	"errors"
	"fmt"
)

// Error kinds returned by Open. Match them with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("i/o error")
	ErrCorruptStream     = errors.New("corrupt stream")
)

// DecodeError reports a failed Open.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, fmt.Sprintf(format, args...))
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptStream, fmt.Sprintf(format, args...))
}

// classify makes sure err carries one of the error kinds. Decoder failures
// that are not already classified are treated as corrupt data.
func classify(err error) error {
	if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrIO) || errors.Is(err, ErrCorruptStream) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCorruptStream, err)
}
