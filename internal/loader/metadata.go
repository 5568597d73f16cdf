package loader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo is the display metadata of a track.
type TrackInfo struct {
	Title  string
	Artist string
	Album  string
	Year   int
	Track  int
}

// readTrackInfo reads tags from r. Files without readable tags (WAV, or
// untagged files) get the file name without extension as title.
func readTrackInfo(r io.ReadSeeker, path string) TrackInfo {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	m, err := tag.ReadFrom(r)
	if err != nil {
		return TrackInfo{Title: fallback}
	}

	title := m.Title()
	if title == "" {
		title = fallback
	}
	track, _ := m.Track()

	return TrackInfo{
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
		Year:   m.Year(),
		Track:  track,
	}
}
