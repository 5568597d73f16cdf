package loader

import (
	"io"
	"math"

	"github.com/go-audio/wav"

	"github.com/llehouerou/waves-lite/internal/pcm"
)

const wavFormatPCM = 1

// decodeWAV decodes integer PCM WAV files of 8, 16, 24 or 32 bits.
func decodeWAV(r io.ReadSeeker) (*pcm.Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, unsupported("not a RIFF/WAVE file")
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, unsupported("wav codec 0x%04x", dec.WavAudioFormat)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, unsupported("wav bit depth %d", bitDepth)
	}
	if channels < 1 || dec.SampleRate == 0 {
		return nil, corrupt("wav header: %d channels at %d Hz", channels, dec.SampleRate)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, corrupt("wav data: %v", err)
	}

	frameBytes := int64(channels * bitDepth / 8)
	declared := dec.PCMLen() / frameBytes
	if len(ib.Data)%channels != 0 || int64(len(ib.Data)/channels) != declared {
		return nil, corrupt("wav: decoded %d samples, header declares %d frames of %d channels",
			len(ib.Data), declared, channels)
	}

	samples := make([]int16, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = toInt16(v, bitDepth)
	}
	return pcm.NewBuffer(float64(dec.SampleRate), channels, samples)
}

// toInt16 rescales an integer sample of the given width to 16 bits.
// 8-bit WAV samples are unsigned.
func toInt16(v, bitDepth int) int16 {
	switch bitDepth {
	case 8:
		return int16((v - 128) << 8) //nolint:gosec // audio samples
	case 16:
		return int16(v) //nolint:gosec // audio samples
	default:
		v >>= bitDepth - 16
		return int16(max(math.MinInt16, min(math.MaxInt16, v))) //nolint:gosec // clamped
	}
}
