package loader

import (
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"

	"github.com/llehouerou/waves-lite/internal/pcm"
)

// decodeFLAC decodes a FLAC file through beep and quantizes it to 16 bits.
func decodeFLAC(r io.ReadSeeker) (*pcm.Buffer, error) {
	// Some taggers prepend an ID3v2 tag the FLAC decoder does not expect.
	if err := skipID3v2(r); err != nil {
		return nil, corrupt("flac: %v", err)
	}

	streamer, format, err := flac.Decode(r)
	if err != nil {
		return nil, unsupported("flac: %v", err)
	}
	defer streamer.Close()

	channels := min(format.NumChannels, 2)
	samples, frames, err := drain(streamer, channels, streamer.Len())
	if err != nil {
		return nil, corrupt("flac: %v", err)
	}
	if frames != streamer.Len() {
		return nil, corrupt("flac: decoded %d frames, stream declares %d", frames, streamer.Len())
	}
	return pcm.NewBuffer(float64(format.SampleRate), channels, samples)
}

// drain reads a beep streamer to the end into interleaved 16-bit samples.
func drain(s beep.Streamer, channels, sizeHint int) ([]int16, int, error) {
	samples := make([]int16, 0, max(sizeHint, 0)*channels)
	chunk := make([][2]float64, 4096)
	frames := 0
	for {
		n, ok := s.Stream(chunk)
		for i := range n {
			samples = append(samples, pcm.Quantize(chunk[i][0]))
			if channels == 2 {
				samples = append(samples, pcm.Quantize(chunk[i][1]))
			}
		}
		frames += n
		if !ok {
			break
		}
	}
	return samples, frames, s.Err()
}

// skipID3v2 positions r after an ID3v2 tag, or at the start when there is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n < len(header) {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	if string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
