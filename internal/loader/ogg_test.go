package loader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildOggPage builds a page whose body is the concatenation of segs, with
// the given lacing values.
func buildOggPage(serial uint32, granule int64, lacing []byte, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString("OggS")
	b.WriteByte(0) // version
	b.WriteByte(0) // header type
	_ = binary.Write(&b, binary.LittleEndian, granule)
	_ = binary.Write(&b, binary.LittleEndian, serial)
	_ = binary.Write(&b, binary.LittleEndian, uint32(0)) // sequence
	_ = binary.Write(&b, binary.LittleEndian, uint32(0)) // checksum
	b.WriteByte(byte(len(lacing)))
	b.Write(lacing)
	b.Write(body)
	return b.Bytes()
}

func TestOggPacketReader_SplitsPackets(t *testing.T) {
	page := buildOggPage(7, 42, []byte{3, 2}, []byte("abcde"))
	r := newOggPacketReader(bytes.NewReader(page))

	p1, err := r.next()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), p1)

	p2, err := r.next()
	require.NoError(t, err)
	assert.Equal(t, []byte("de"), p2)

	_, err = r.next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, int64(42), r.lastGranule())
}

func TestOggPacketReader_JoinsSpanningPacket(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, 255)
	first := buildOggPage(1, -1, []byte{255}, long)
	second := buildOggPage(1, 99, []byte{4}, []byte("tail"))
	r := newOggPacketReader(bytes.NewReader(append(first, second...)))

	pkt, err := r.next()
	require.NoError(t, err)
	assert.Len(t, pkt, 259)
	assert.Equal(t, []byte("tail"), pkt[255:])
	assert.Equal(t, int64(99), r.lastGranule())
}

func TestOggPacketReader_IgnoresOtherStreams(t *testing.T) {
	a := buildOggPage(1, 0, []byte{1}, []byte("a"))
	b := buildOggPage(2, 0, []byte{1}, []byte("b"))
	c := buildOggPage(1, 0, []byte{1}, []byte("c"))
	r := newOggPacketReader(bytes.NewReader(bytes.Join([][]byte{a, b, c}, nil)))

	p, err := r.next()
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), p)
	p, err = r.next()
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), p)
}

func TestOggPacketReader_TruncatedPacket(t *testing.T) {
	page := buildOggPage(1, -1, []byte{255}, bytes.Repeat([]byte{'x'}, 255))
	r := newOggPacketReader(bytes.NewReader(page))

	_, err := r.next()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestReadOggPage_BadMagic(t *testing.T) {
	_, err := readOggPage(bytes.NewReader(bytes.Repeat([]byte{0}, 27)))
	assert.ErrorIs(t, err, errInvalidOggMagic)
}

func TestDecodeOggVorbis_RejectsOtherCodecs(t *testing.T) {
	page := buildOggPage(1, 0, []byte{8}, []byte("OpusHead"))

	_, err := decodeOggVorbis(bytes.NewReader(page))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
