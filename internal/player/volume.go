package player

import (
	"fmt"
	"math"
)

const (
	// MinVolume is the smallest linear volume mapped to a finite gain.
	MinVolume = 1e-4
	// MinGainDB is the device gain used for volumes at or below MinVolume.
	MinGainDB = -80.0
)

// GainDB maps a linear volume in [0, 1] to device gain in decibels:
// 20·log10(max(v, MinVolume)), capped at 0 dB.
func GainDB(v float64) float64 {
	if math.IsNaN(v) || v <= MinVolume {
		return MinGainDB
	}
	if v >= 1 {
		return 0
	}
	return 20 * math.Log10(v)
}

// SetVolume sets the linear volume. Values outside [0, 1] are clamped;
// NaN is rejected.
func (e *Engine) SetVolume(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: volume %v", ErrInvalidCommand, v)
	}
	v = max(0, min(1, v))

	e.mu.Lock()
	defer e.mu.Unlock()

	e.volumeLevel = v
	e.applyVolumeLocked()
	e.publishLocked()
	return nil
}

// Volume returns the linear volume in [0, 1].
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volumeLevel
}

// applyVolumeLocked pushes the current volume into the playing chain.
// beep's Volume effect scales by Base^Volume, so Base 10 with Volume dB/20
// yields the amplitude ratio of the gain.
func (e *Engine) applyVolumeLocked() {
	s := e.session
	if s == nil || s.volume == nil {
		return
	}
	e.out.Lock()
	s.volume.Volume = GainDB(e.volumeLevel) / 20
	s.volume.Silent = e.volumeLevel <= 0
	e.out.Unlock()
}
