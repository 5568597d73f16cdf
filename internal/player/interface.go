package player

import (
	"context"
	"time"
)

// Interface is the engine contract used by the presentation layer.
type Interface interface {
	Load(path string) error
	Play()
	Pause()
	Stop()
	Toggle()
	Seek(fraction float64) error
	SeekBy(delta time.Duration)
	BeginScrub()
	EndScrub(fraction float64) error
	Scrubbing() bool
	SetVolume(v float64) error
	Volume() float64
	SetLoop(enabled bool)
	ToggleLoop() bool
	Loop() bool
	State() State
	Snapshot() Snapshot
	Subscribe() *Subscription
	Run(ctx context.Context) error
	Close() error
}

// Verify Engine implements Interface at compile time.
var _ Interface = (*Engine)(nil)
