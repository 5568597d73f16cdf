package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio device the engine streams into.
//
// Lock and Unlock guard the streamers registered with Play: the device
// pulls samples while holding the lock, so any mutation of a playing
// chain happens between Lock and Unlock. Play and Clear must be called
// without holding the lock.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	SampleRate() beep.SampleRate // 0 until Init succeeds
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
	Close()
}

// speakerOutput drives the system audio device through beep's speaker.
// The speaker is a process-wide singleton initialized at the sample rate
// of the first track; later tracks are resampled to it.
type speakerOutput struct {
	mu   sync.Mutex
	rate beep.SampleRate
}

// NewSpeakerOutput returns the system audio output.
func NewSpeakerOutput() Output {
	return &speakerOutput{}
}

func (o *speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.rate != 0 {
		return nil
	}
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	o.rate = rate
	return nil
}

func (o *speakerOutput) SampleRate() beep.SampleRate {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rate
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (o *speakerOutput) Clear() { speaker.Clear() }

func (o *speakerOutput) Lock() { speaker.Lock() }

func (o *speakerOutput) Unlock() { speaker.Unlock() }

func (o *speakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.rate == 0 {
		return
	}
	speaker.Close()
	o.rate = 0
}
