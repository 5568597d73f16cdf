// Package loader decodes audio files into PCM buffers and lists the
// playable files of a directory.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/llehouerou/waves-lite/internal/pcm"
)

const (
	extWAV  = ".wav"
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
)

// DefaultExtensions is the allow-list used when none is configured.
var DefaultExtensions = []string{extWAV, extMP3}

type decodeFunc func(r io.ReadSeeker) (*pcm.Buffer, error)

var decoders = map[string]decodeFunc{
	extWAV:  decodeWAV,
	extMP3:  decodeMP3,
	extFLAC: decodeFLAC,
	extOGG:  decodeOggVorbis,
}

// Track is a decoded file.
type Track struct {
	Path   string
	Info   TrackInfo
	Buffer *pcm.Buffer
}

// Format returns the decoded format.
func (t *Track) Format() pcm.Format { return t.Buffer.Format }

// Loader opens files whose extension is in its allow-list.
type Loader struct {
	extensions []string
	sorted     bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithSorted controls whether ListPlayableFiles sorts names. When false the
// directory enumeration order is kept.
func WithSorted(sorted bool) Option {
	return func(l *Loader) { l.sorted = sorted }
}

// New creates a loader for the given extensions ("wav", ".MP3", ...).
// An empty list selects DefaultExtensions.
func New(extensions []string, opts ...Option) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	l := &Loader{sorted: true}
	for _, e := range extensions {
		e = normalizeExt(e)
		if e != "" && !slices.Contains(l.extensions, e) {
			l.extensions = append(l.extensions, e)
		}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Extensions returns the normalized allow-list.
func (l *Loader) Extensions() []string {
	return slices.Clone(l.extensions)
}

// IsPlayable reports whether name has an allowed extension (case-insensitive).
func (l *Loader) IsPlayable(name string) bool {
	return slices.Contains(l.extensions, strings.ToLower(filepath.Ext(name)))
}

// Open decodes the file at path into memory. The file is closed before
// Open returns; the returned track owns only decoded samples.
func (l *Loader) Open(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !l.IsPlayable(path) {
		return nil, &DecodeError{Path: path, Err: unsupported("extension %q not allowed", ext)}
	}
	decode, ok := decoders[ext]
	if !ok {
		return nil, &DecodeError{Path: path, Err: unsupported("no decoder for %q", ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()

	info := readTrackInfo(f, path)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}

	buf, err := decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: classify(err)}
	}
	if !buf.Format.Valid() {
		return nil, &DecodeError{Path: path, Err: corrupt("invalid format %+v", buf.Format)}
	}

	return &Track{Path: path, Info: info, Buffer: buf}, nil
}

func normalizeExt(e string) string {
	e = strings.ToLower(strings.TrimSpace(e))
	if e == "" {
		return ""
	}
	if !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	return e
}
