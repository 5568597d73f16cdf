// Package pcm holds decoded audio: the format of a track and its samples as
// interleaved signed 16-bit PCM.
package pcm

import (
	"math"
	"time"
)

// BitDepth is the only sample width the player works with.
const BitDepth = 16

// Format describes a decoded track.
type Format struct {
	SampleRate float64 // Hz
	Channels   int
	BitDepth   int
	Frames     int // total decodable frames
}

// NewFormat returns a 16-bit format.
func NewFormat(sampleRate float64, channels, frames int) Format {
	return Format{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   BitDepth,
		Frames:     frames,
	}
}

// Valid reports whether the format can be played.
func (f Format) Valid() bool {
	return f.SampleRate > 0 && f.Channels >= 1 && f.Frames >= 0
}

// Seconds converts a frame index to seconds.
func (f Format) Seconds(frame int) float64 {
	if f.SampleRate <= 0 {
		return 0
	}
	return float64(frame) / f.SampleRate
}

// DurationSeconds returns Frames / SampleRate.
func (f Format) DurationSeconds() float64 {
	return f.Seconds(f.Frames)
}

// Duration returns the track length.
func (f Format) Duration() time.Duration {
	return time.Duration(f.DurationSeconds() * float64(time.Second))
}

// FrameAt maps a fraction of the track to a frame index, rounding to the
// nearest frame. The fraction is clamped to [0, 1].
func (f Format) FrameAt(fraction float64) int {
	if math.IsNaN(fraction) || fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return f.Frames
	}
	return int(math.Round(fraction * float64(f.Frames)))
}

// FrameOf converts a duration to a frame index (not clamped).
func (f Format) FrameOf(d time.Duration) int {
	return int(math.Round(d.Seconds() * f.SampleRate))
}

// BytesPerFrame returns the size of one frame of 16-bit samples.
func (f Format) BytesPerFrame() int {
	return f.Channels * BitDepth / 8
}
