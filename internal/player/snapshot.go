package player

import (
	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/pcm"
)

// Snapshot is the engine state as seen by a presentation layer.
type Snapshot struct {
	State     State
	Loaded    bool
	Path      string
	Info      loader.TrackInfo
	Format    pcm.Format
	Frame     int
	Position  float64 // seconds
	Duration  float64 // seconds
	Loop      bool
	Volume    float64
	Scrubbing bool
}

// Progress returns the position as a fraction of the duration.
func (s Snapshot) Progress() float64 {
	if s.Format.Frames <= 0 {
		return 0
	}
	return float64(s.Frame) / float64(s.Format.Frames)
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:     Stopped,
		Loop:      e.loop,
		Volume:    e.volumeLevel,
		Scrubbing: e.scrubbing,
	}
	s := e.session
	if s == nil {
		return snap
	}
	frame := s.source.Position()
	snap.State = s.state
	snap.Loaded = true
	snap.Path = s.path
	snap.Info = s.info
	snap.Format = s.format
	snap.Frame = frame
	snap.Position = s.format.Seconds(frame)
	snap.Duration = s.format.DurationSeconds()
	return snap
}
