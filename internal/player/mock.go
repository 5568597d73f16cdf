// internal/player/mock.go
package player

import (
	"context"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/llehouerou/waves-lite/internal/loader"
)

// Mock is a test double for Engine. It keeps a snapshot that the control
// methods mutate and records the calls made.
type Mock struct {
	mu        sync.Mutex
	snap      Snapshot
	loadErr   error
	loadCalls []string
	seekCalls []float64
	seekBy    []time.Duration
	sub       *Subscription
	closed    bool
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		snap: Snapshot{State: Stopped, Volume: defaultVolume},
		sub:  newSubscription(),
	}
}

func (m *Mock) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		m.sub.sendError(ErrorEvent{Operation: "load", Path: path, Err: m.loadErr})
		return m.loadErr
	}
	m.snap.State = Stopped
	m.snap.Loaded = true
	m.snap.Path = path
	m.snap.Info = loader.TrackInfo{Title: filepath.Base(path)}
	m.snap.Frame = 0
	m.snap.Position = 0
	m.publishLocked()
	return nil
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.Loaded {
		m.snap.State = Playing
		m.publishLocked()
	}
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.State == Playing {
		m.snap.State = Paused
		m.publishLocked()
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.Loaded {
		m.snap.State = Stopped
		m.snap.Frame = 0
		m.snap.Position = 0
		m.publishLocked()
	}
}

func (m *Mock) Toggle() {
	if m.State() == Playing {
		m.Pause()
		return
	}
	m.Play()
}

func (m *Mock) Seek(fraction float64) error {
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return ErrInvalidCommand
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, fraction)
	m.snap.Position = fraction * m.snap.Duration
	m.publishLocked()
	return nil
}

func (m *Mock) SeekBy(delta time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekBy = append(m.seekBy, delta)
}

func (m *Mock) BeginScrub() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Scrubbing = true
}

func (m *Mock) EndScrub(fraction float64) error {
	m.mu.Lock()
	m.snap.Scrubbing = false
	m.mu.Unlock()
	return m.Seek(fraction)
}

func (m *Mock) Scrubbing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Scrubbing
}

func (m *Mock) SetVolume(v float64) error {
	if math.IsNaN(v) {
		return ErrInvalidCommand
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Volume = max(0, min(1, v))
	m.publishLocked()
	return nil
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Volume
}

func (m *Mock) SetLoop(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Loop = enabled
	m.publishLocked()
}

func (m *Mock) ToggleLoop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Loop = !m.snap.Loop
	m.publishLocked()
	return m.snap.Loop
}

func (m *Mock) Loop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.Loop
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.State
}

func (m *Mock) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Subscribe returns the mock's single subscription.
func (m *Mock) Subscribe() *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sub.sendSnapshot(m.snap)
	return m.sub
}

func (m *Mock) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		m.sub.close()
	}
	return nil
}

func (m *Mock) publishLocked() {
	m.sub.sendSnapshot(m.snap)
}

// Test helpers

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SetDuration sets the duration reported for the loaded track.
func (m *Mock) SetDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Duration = seconds
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) SeekCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seekCalls...)
}

func (m *Mock) SeekByCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekBy...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
