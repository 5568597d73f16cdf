// Package player is the playback engine: it owns the single loaded track,
// drives the output device and reports progress.
package player

// State represents the playback state machine.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                            │ ▲
//	     │ stop                 pause │ │ play
//	     │                            ▼ │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                  stop       └──────────┘
//
// Valid transitions:
//   - Stopped → Playing (via Play, needs a loaded track)
//   - Playing → Paused  (via Pause, position kept)
//   - Paused  → Playing (via Play)
//   - Playing → Stopped (via Stop, or end of stream with loop off)
//   - Paused  → Stopped (via Stop)
//   - Playing → Playing (end of stream with loop on, position back to 0)
//
// Loading a track leaves the engine Stopped at frame 0. Play with no track,
// Pause when not Playing and Stop when Stopped are no-ops.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if Play would start or resume output.
func (s State) CanPlay() bool {
	return s == Stopped || s == Paused
}
