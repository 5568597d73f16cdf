package player

import (
	"context"
	"time"
)

// Run publishes the position every tick and handles end of stream until
// ctx is done or the engine is closed. It must run for loop mode and
// automatic stop to work.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.done:
			return nil
		case id := <-e.finishedCh:
			e.handleFinished(id)
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick publishes a snapshot unless a scrub is in progress, so the
// consumer's drag position is not overwritten.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scrubbing || e.closed {
		return
	}
	e.publishLocked()
}

// handleFinished runs when output chain id ran dry. Chains replaced by a
// stop, a reload or a restart are ignored. Only a Playing track whose
// source reached its last frame finished naturally; a chain that ran dry
// after a seek away from the end is restarted from the new position.
// An empty track never loops.
func (e *Engine) handleFinished(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.ctrl == nil || s.chain != id {
		return
	}

	// Paused after the device dropped the chain: the next Play must
	// register a new one.
	if s.state == Paused {
		s.ctrl = nil
		s.volume = nil
		return
	}
	if s.state != Playing {
		return
	}

	if !s.source.AtEnd() {
		e.startLocked(s)
		return
	}

	if e.loop && s.format.Frames > 0 {
		e.log.Debug().Str("path", s.path).Msg("end of stream, looping")
		_ = s.source.Seek(0)
		e.startLocked(s)
		e.publishLocked()
		return
	}

	e.log.Debug().Str("path", s.path).Msg("end of stream")
	e.stopLocked()
}

// PollInterval returns the tick interval used by Run.
func (e *Engine) PollInterval() time.Duration {
	return e.tickInterval
}
