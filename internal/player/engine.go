package player

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/pcm"
)

const (
	defaultTickInterval    = time.Second / 60
	defaultBufferDuration  = time.Second / 10
	defaultResampleQuality = 4
	defaultVolume          = 0.5
)

// session is the single loaded track.
type session struct {
	path   string
	info   loader.TrackInfo
	format pcm.Format
	source *pcm.Source
	state  State

	// Output chain, set while the track is registered with the device.
	chain  uint64
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// Engine owns the loaded track and serializes every command, the position
// tick and end-of-stream handling on one mutex.
type Engine struct {
	mu sync.Mutex

	out    Output
	loader *loader.Loader
	log    zerolog.Logger

	tickInterval    time.Duration
	bufferDuration  time.Duration
	resampleQuality int

	session     *session
	chains      uint64
	loop        bool
	volumeLevel float64
	scrubbing   bool

	// finishedCh receives the id of an output chain that ran dry. It is
	// written from the device goroutine and drained by Run.
	finishedCh chan uint64

	subs   []*Subscription
	subsMu sync.Mutex

	done   chan struct{}
	closed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTickInterval sets how often Run publishes the position.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// WithVolume sets the initial linear volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(e *Engine) {
		if !math.IsNaN(v) {
			e.volumeLevel = max(0, min(1, v))
		}
	}
}

// WithBufferDuration sets the device buffer length used at Init.
func WithBufferDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.bufferDuration = d
		}
	}
}

// WithResampleQuality sets the beep resampling quality (1-64) used when a
// track's rate differs from the device rate.
func WithResampleQuality(q int) Option {
	return func(e *Engine) {
		if q >= 1 && q <= 64 {
			e.resampleQuality = q
		}
	}
}

// New creates an engine that decodes with l and plays into out.
func New(out Output, l *loader.Loader, opts ...Option) *Engine {
	e := &Engine{
		out:             out,
		loader:          l,
		log:             zerolog.Nop(),
		tickInterval:    defaultTickInterval,
		bufferDuration:  defaultBufferDuration,
		resampleQuality: defaultResampleQuality,
		volumeLevel:     defaultVolume,
		finishedCh:      make(chan uint64, 1),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load decodes path and makes it the loaded track. If decoding fails the
// previously loaded track is left untouched and keeps playing.
func (e *Engine) Load(path string) error {
	track, err := e.loader.Open(path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("load failed")
		e.publishError("load", path, err)
		return err
	}
	return e.LoadTrack(track)
}

// LoadTrack replaces the loaded track with an already decoded one. The
// previous track is stopped and its samples released before the new one
// becomes visible. The new track starts Stopped at frame 0.
func (e *Engine) LoadTrack(track *loader.Track) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("%w: engine closed", ErrInvalidCommand)
	}

	format := track.Format()
	if err := e.ensureDeviceLocked(format); err != nil {
		e.log.Error().Err(err).Str("path", track.Path).Msg("open output device")
		e.publishError("load", track.Path, err)
		return err
	}

	e.teardownLocked()

	e.session = &session{
		path:   track.Path,
		info:   track.Info,
		format: format,
		source: pcm.NewSource(track.Buffer),
		state:  Stopped,
	}

	e.log.Info().
		Str("path", track.Path).
		Int("frames", format.Frames).
		Float64("rate", format.SampleRate).
		Int("channels", format.Channels).
		Str("pcm", humanize.IBytes(uint64(len(track.Buffer.Samples)*2))). //nolint:gosec // length is non-negative
		Float64("gain_db", GainDB(e.volumeLevel)).
		Msg("track loaded")

	e.publishLocked()
	return nil
}

// ensureDeviceLocked opens the output device at the first track's rate.
func (e *Engine) ensureDeviceLocked(format pcm.Format) error {
	if e.out.SampleRate() != 0 {
		return nil
	}
	rate := beep.SampleRate(int(format.SampleRate))
	if err := e.out.Init(rate, rate.N(e.bufferDuration)); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	e.log.Debug().Int("rate", int(rate)).Msg("output device opened")
	return nil
}

// teardownLocked unregisters the loaded track from the device and releases
// its samples.
func (e *Engine) teardownLocked() {
	s := e.session
	if s == nil {
		return
	}
	if s.ctrl != nil {
		e.out.Clear()
	}
	s.ctrl = nil
	s.volume = nil
	s.state = Stopped
	_ = s.source.Close()
	e.session = nil
	e.log.Debug().Str("path", s.path).Msg("track released")
}

// Close stops playback, releases the track and the output device, and ends
// every subscription. Further commands are no-ops.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.teardownLocked()
	e.out.Close()
	close(e.done)
	e.mu.Unlock()

	e.subsMu.Lock()
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	e.subsMu.Unlock()
	return nil
}
