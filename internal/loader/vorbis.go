package loader

import (
	"bytes"
	"errors"
	"io"

	"github.com/jfreymuth/vorbis"

	"github.com/llehouerou/waves-lite/internal/pcm"
)

const vorbisHeaderPackets = 3

// decodeOggVorbis decodes an Ogg Vorbis file. The last page's granule
// position gives the exact frame count; decoded audio past it is padding.
func decodeOggVorbis(r io.ReadSeeker) (*pcm.Buffer, error) {
	packets := newOggPacketReader(r)

	first, err := packets.next()
	if err != nil {
		return nil, unsupported("ogg: %v", err)
	}
	if len(first) < 7 || first[0] != 1 || !bytes.Equal(first[1:7], []byte("vorbis")) {
		return nil, unsupported("ogg: not a vorbis stream")
	}

	dec := &vorbis.Decoder{}
	if err := dec.ReadHeader(first); err != nil {
		return nil, corrupt("vorbis header: %v", err)
	}
	for range vorbisHeaderPackets - 1 {
		pkt, err := packets.next()
		if err != nil {
			return nil, corrupt("vorbis header: %v", err)
		}
		if err := dec.ReadHeader(pkt); err != nil {
			return nil, corrupt("vorbis header: %v", err)
		}
	}

	channels := dec.Channels()
	out := min(channels, 2)
	var samples []int16
	frames := 0
	for {
		pkt, err := packets.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, corrupt("ogg: %v", err)
		}
		decoded, err := dec.Decode(pkt)
		if err != nil {
			return nil, corrupt("vorbis: %v", err)
		}
		for i := 0; i+channels <= len(decoded); i += channels {
			for c := range out {
				samples = append(samples, pcm.Quantize(float64(decoded[i+c])))
			}
			frames++
		}
	}

	total := int(packets.lastGranule())
	if frames < total {
		return nil, corrupt("vorbis: decoded %d frames, stream declares %d", frames, total)
	}
	samples = samples[:total*out]

	return pcm.NewBuffer(float64(dec.SampleRate()), out, samples)
}
