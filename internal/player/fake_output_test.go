package player

import (
	"sync"
	"testing"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/pcm"
)

// fakeOutput is an Output whose samples are pulled by the test instead of
// a sound card.
type fakeOutput struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	initErr   error
	streamers []beep.Streamer
	inits     int
	clears    int
	closed    bool
}

func (o *fakeOutput) Init(rate beep.SampleRate, _ int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initErr != nil {
		return o.initErr
	}
	o.rate = rate
	o.inits++
	return nil
}

func (o *fakeOutput) SampleRate() beep.SampleRate {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rate
}

func (o *fakeOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.streamers = append(o.streamers, s)
}

func (o *fakeOutput) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.streamers = nil
	o.clears++
}

func (o *fakeOutput) Lock()   { o.mu.Lock() }
func (o *fakeOutput) Unlock() { o.mu.Unlock() }

func (o *fakeOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.rate = 0
}

// pull streams n frames from every registered streamer the way a mixer
// does, dropping streamers that are exhausted.
func (o *fakeOutput) pull(n int) [][2]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	buf := make([][2]float64, n)
	kept := o.streamers[:0]
	for _, s := range o.streamers {
		if _, ok := s.Stream(buf); ok {
			kept = append(kept, s)
		}
	}
	o.streamers = kept
	return buf
}

func (o *fakeOutput) active() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streamers)
}

// testTrack returns a silent decoded track.
func testTrack(t *testing.T, path string, rate float64, channels, frames int) *loader.Track {
	t.Helper()
	buf, err := pcm.NewBuffer(rate, channels, make([]int16, frames*channels))
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return &loader.Track{Path: path, Info: loader.TrackInfo{Title: path}, Buffer: buf}
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	e := New(out, loader.New(nil), opts...)
	t.Cleanup(func() { _ = e.Close() })
	return e, out
}

// finish handles a pending end-of-stream notification, failing if none.
func finish(t *testing.T, e *Engine) {
	t.Helper()
	select {
	case id := <-e.finishedCh:
		e.handleFinished(id)
	default:
		t.Fatal("no end-of-stream notification")
	}
}
