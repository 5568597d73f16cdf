package pcm

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep/v2"
)

var _ beep.StreamSeeker = (*Source)(nil)

// Source streams a Buffer into beep, tracking the current frame.
// Mono is duplicated to both output channels; tracks with more than two
// channels play their first two.
type Source struct {
	mu      sync.Mutex
	buf     *Buffer
	pos     atomic.Int64
	closed  atomic.Bool
	release atomic.Int32
}

// NewSource returns a source positioned at frame 0.
func NewSource(buf *Buffer) *Source {
	return &Source{buf: buf}
}

// Format returns the format of the underlying buffer.
func (s *Source) Format() Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return Format{}
	}
	return s.buf.Format
}

// Stream implements beep.Streamer.
func (s *Source) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return 0, false
	}

	frames := s.buf.Format.Frames
	ch := s.buf.Format.Channels
	pos := int(s.pos.Load())
	if pos >= frames {
		return 0, false
	}

	n = min(len(samples), frames-pos)
	for i := range n {
		off := (pos + i) * ch
		left := Float(s.buf.Samples[off])
		right := left
		if ch > 1 {
			right = Float(s.buf.Samples[off+1])
		}
		samples[i] = [2]float64{left, right}
	}
	s.pos.Store(int64(pos + n))
	return n, true
}

// Err implements beep.Streamer.
func (s *Source) Err() error { return nil }

// Len returns the total number of frames.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return 0
	}
	return s.buf.Format.Frames
}

// Position returns the next frame to be streamed. Safe to call while the
// output device is streaming.
func (s *Source) Position() int {
	return int(s.pos.Load())
}

// Seek moves to frame p, clamped to [0, Len()].
func (s *Source) Seek(p int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	frames := 0
	if s.buf != nil {
		frames = s.buf.Format.Frames
	}
	p = max(0, min(p, frames))
	s.pos.Store(int64(p))
	return nil
}

// AtEnd reports whether every frame has been streamed.
func (s *Source) AtEnd() bool {
	return s.Position() >= s.Len()
}

// Close drops the decoded samples. Only the first call releases anything.
func (s *Source) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.mu.Lock()
	s.buf = nil
	s.mu.Unlock()
	s.release.Add(1)
	return nil
}

// Releases returns how many times the buffer has been released (0 or 1).
func (s *Source) Releases() int {
	return int(s.release.Load())
}
