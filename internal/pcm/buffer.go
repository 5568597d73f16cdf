package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPartialFrame is returned when a sample count is not a whole number of frames.
	ErrPartialFrame = errors.New("pcm: partial frame")
	// ErrInvalidFormat is returned for a zero sample rate or channel count.
	ErrInvalidFormat = errors.New("pcm: invalid format")
)

// Buffer is a fully decoded track. Samples are interleaved by channel.
type Buffer struct {
	Format  Format
	Samples []int16
}

// NewBuffer validates samples against the sample rate and channel count and
// derives the frame count.
func NewBuffer(sampleRate float64, channels int, samples []int16) (*Buffer, error) {
	if sampleRate <= 0 || channels < 1 {
		return nil, fmt.Errorf("%w: rate=%v channels=%d", ErrInvalidFormat, sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}
	return &Buffer{
		Format:  NewFormat(sampleRate, channels, len(samples)/channels),
		Samples: samples,
	}, nil
}

// FromBytes parses signed 16-bit little-endian PCM.
func FromBytes(sampleRate float64, channels int, data []byte) (*Buffer, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte count %d", ErrPartialFrame, len(data))
	}
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:])) //nolint:gosec // audio samples
	}
	return NewBuffer(sampleRate, channels, samples)
}

// Bytes returns the samples as signed 16-bit little-endian PCM.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.Samples)*2)
	for i, s := range b.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s)) //nolint:gosec // audio samples
	}
	return out
}

// Frame returns the samples of frame i.
func (b *Buffer) Frame(i int) []int16 {
	ch := b.Format.Channels
	return b.Samples[i*ch : (i+1)*ch]
}

// Quantize converts a float sample in [-1, 1] to 16-bit, clipping outside the range.
func Quantize(v float64) int16 {
	if v >= 1 {
		return math.MaxInt16
	}
	if v <= -1 {
		return math.MinInt16
	}
	return int16(math.Round(v * 32767))
}

// Float converts a 16-bit sample to [-1, 1).
func Float(s int16) float64 {
	return float64(s) / 32768.0
}
