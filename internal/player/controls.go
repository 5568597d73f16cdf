package player

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Play starts or resumes playback from the current position.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playLocked()
}

func (e *Engine) playLocked() {
	s := e.session
	if s == nil || !s.state.CanPlay() {
		return
	}
	if s.state == Paused && s.ctrl != nil {
		e.out.Lock()
		s.ctrl.Paused = false
		e.out.Unlock()
	} else {
		e.startLocked(s)
	}
	s.state = Playing
	e.publishLocked()
}

// startLocked registers a fresh output chain for s, starting at the
// source's current position:
//
//	source → resample → ctrl (pause) → volume → callback (end of stream)
func (e *Engine) startLocked(s *session) {
	e.out.Clear()

	var stream beep.Streamer = s.source
	trackRate := beep.SampleRate(int(s.format.SampleRate))
	if deviceRate := e.out.SampleRate(); deviceRate != 0 && trackRate != deviceRate {
		stream = beep.Resample(e.resampleQuality, trackRate, deviceRate, stream)
	}
	s.ctrl = &beep.Ctrl{Streamer: stream}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 10}
	e.applyVolumeLocked()

	e.chains++
	s.chain = e.chains
	id := s.chain
	e.out.Play(beep.Seq(s.volume, beep.Callback(func() {
		// Runs on the device goroutine with the device lock held: hand
		// off to Run instead of touching engine state here.
		e.notifyFinished(id)
	})))
}

// notifyFinished posts id to Run. A stale id still waiting in the slot is
// replaced so the current chain's completion is never lost.
func (e *Engine) notifyFinished(id uint64) {
	select {
	case e.finishedCh <- id:
		return
	default:
	}
	select {
	case <-e.finishedCh:
	default:
	}
	select {
	case e.finishedCh <- id:
	default:
	}
}

// Pause halts output and keeps the position.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

func (e *Engine) pauseLocked() {
	s := e.session
	if s == nil || !s.state.CanPause() || s.ctrl == nil {
		return
	}
	e.out.Lock()
	s.ctrl.Paused = true
	e.out.Unlock()
	s.state = Paused
	e.publishLocked()
}

// Stop halts output and rewinds to frame 0.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	s := e.session
	if s == nil {
		return
	}
	if s.ctrl != nil {
		e.out.Clear()
		s.ctrl = nil
		s.volume = nil
	}
	_ = s.source.Seek(0)
	s.state = Stopped
	e.publishLocked()
}

// Toggle pauses when playing and plays otherwise.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil && e.session.state == Playing {
		e.pauseLocked()
		return
	}
	e.playLocked()
}

// Seek moves to round(fraction × frames). The state is unchanged: a
// playing track continues from the new position.
func (e *Engine) Seek(fraction float64) error {
	if err := validFraction(fraction); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seekFrameLocked(func(s *session) int { return s.format.FrameAt(fraction) })
	return nil
}

func validFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: seek fraction %v outside [0, 1]", ErrInvalidCommand, fraction)
	}
	return nil
}

// SeekBy moves the position by delta, clamped to the track.
func (e *Engine) SeekBy(delta time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seekFrameLocked(func(s *session) int {
		return s.source.Position() + s.format.FrameOf(delta)
	})
}

func (e *Engine) seekFrameLocked(target func(*session) int) {
	s := e.session
	if s == nil {
		return
	}
	frame := target(s)
	e.out.Lock()
	_ = s.source.Seek(frame)
	e.out.Unlock()
	e.publishLocked()
}

// BeginScrub marks the start of a manual position drag. Position ticks are
// not published until EndScrub.
func (e *Engine) BeginScrub() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrubbing = true
}

// EndScrub ends a drag and seeks to its final fraction. The drag ends
// even when the fraction is rejected.
func (e *Engine) EndScrub(fraction float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrubbing = false
	if err := validFraction(fraction); err != nil {
		e.publishLocked()
		return err
	}
	e.seekFrameLocked(func(s *session) int { return s.format.FrameAt(fraction) })
	return nil
}

// Scrubbing reports whether a drag is in progress.
func (e *Engine) Scrubbing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrubbing
}

// SetLoop enables or disables restarting the track at end of stream.
func (e *Engine) SetLoop(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loop = enabled
	e.publishLocked()
}

// ToggleLoop flips the loop flag and returns the new value.
func (e *Engine) ToggleLoop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loop = !e.loop
	e.publishLocked()
	return e.loop
}

// Loop reports whether loop mode is on.
func (e *Engine) Loop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loop
}

// State returns the playback state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Stopped
	}
	return e.session.state
}
