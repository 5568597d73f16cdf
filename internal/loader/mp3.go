package loader

import (
	"errors"
	"io"

	"github.com/llehouerou/go-mp3"

	"github.com/llehouerou/waves-lite/internal/pcm"
)

// mp3FrameSamples is the number of samples in one MPEG-1 Layer III frame.
// Sample counts reported by the decoder may be off by up to one frame of
// encoder padding.
const mp3FrameSamples = 1152

// decodeMP3 decodes an MP3 file. go-mp3 always outputs 16-bit stereo.
func decodeMP3(r io.ReadSeeker) (*pcm.Buffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, unsupported("mp3: %v", err)
	}
	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, corrupt("mp3: invalid sample rate")
	}

	data, err := io.ReadAll(decoder)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, corrupt("mp3: %v", err)
	}

	const channels = 2
	buf, err := pcm.FromBytes(float64(sampleRate), channels, data[:len(data)-len(data)%2])
	if err != nil {
		return nil, corrupt("mp3: %v", err)
	}

	if declared := decoder.SampleCount(); declared > 0 {
		diff := declared - int64(buf.Format.Frames)
		if diff > mp3FrameSamples || diff < -mp3FrameSamples {
			return nil, corrupt("mp3: decoded %d frames, stream declares %d", buf.Format.Frames, declared)
		}
	}
	return buf, nil
}
