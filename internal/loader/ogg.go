package loader

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	errInvalidOggMagic   = errors.New("ogg: invalid capture pattern")
	errInvalidOggVersion = errors.New("ogg: unsupported version")
)

// oggPage is one parsed Ogg page.
type oggPage struct {
	granulePos int64
	serial     uint32
	segments   []uint8
	body       []byte
}

// readOggPage reads the next page from r.
func readOggPage(r io.Reader) (*oggPage, error) {
	var hdr [27]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if string(hdr[0:4]) != "OggS" {
		return nil, errInvalidOggMagic
	}
	if hdr[4] != 0 {
		return nil, errInvalidOggVersion
	}

	p := &oggPage{
		granulePos: int64(binary.LittleEndian.Uint64(hdr[6:14])), //nolint:gosec // granule is signed
		serial:     binary.LittleEndian.Uint32(hdr[14:18]),
		segments:   make([]uint8, hdr[26]),
	}
	if _, err := io.ReadFull(r, p.segments); err != nil {
		return nil, err
	}

	size := 0
	for _, s := range p.segments {
		size += int(s)
	}
	p.body = make([]byte, size)
	if _, err := io.ReadFull(r, p.body); err != nil {
		return nil, err
	}
	return p, nil
}

// oggPacketReader reassembles the packets of the first logical stream,
// including packets that span pages.
type oggPacketReader struct {
	r       io.Reader
	serial  uint32
	started bool
	pending [][]byte
	partial []byte
	granule int64
}

func newOggPacketReader(r io.Reader) *oggPacketReader {
	return &oggPacketReader{r: r}
}

// next returns the next complete packet, or io.EOF at the end of the stream.
func (o *oggPacketReader) next() ([]byte, error) {
	for len(o.pending) == 0 {
		page, err := readOggPage(o.r)
		if err != nil {
			if errors.Is(err, io.EOF) && len(o.partial) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if !o.started {
			o.serial = page.serial
			o.started = true
		}
		if page.serial != o.serial {
			continue
		}
		if page.granulePos >= 0 {
			o.granule = page.granulePos
		}
		o.split(page)
	}
	pkt := o.pending[0]
	o.pending = o.pending[1:]
	return pkt, nil
}

// split cuts a page body into packets using its lacing values. A packet
// ends at the first segment shorter than 255 bytes.
func (o *oggPacketReader) split(page *oggPage) {
	off := 0
	for _, seg := range page.segments {
		o.partial = append(o.partial, page.body[off:off+int(seg)]...)
		off += int(seg)
		if seg < 255 {
			o.pending = append(o.pending, o.partial)
			o.partial = nil
		}
	}
}

// lastGranule is the granule position of the most recent page read.
func (o *oggPacketReader) lastGranule() int64 {
	return o.granule
}
