// Package playerbar renders the playback status panel: state, title,
// elapsed/total time, progress bar, volume and loop indicator.
package playerbar

import (
	"path/filepath"
	"strings"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
	loopSymbol  = "⟳"

	noTrack = "No file loaded"
)

// State holds everything needed to render the player bar.
type State struct {
	Status   player.State
	Loaded   bool
	Title    string
	Artist   string
	Album    string
	Position float64 // seconds
	Duration float64 // seconds
	Progress float64 // 0..1
	Volume   float64
	Loop     bool

	// While scrubbing the bar follows the scrub target, not the engine.
	Scrubbing   bool
	ScrubTarget float64
}

// Height returns the total height of the player bar including borders.
func Height() int {
	return 4
}

// NewState builds the render state from an engine snapshot.
func NewState(snap player.Snapshot) State {
	s := State{
		Status:   snap.State,
		Loaded:   snap.Loaded,
		Position: snap.Position,
		Duration: snap.Duration,
		Progress: snap.Progress(),
		Volume:   snap.Volume,
		Loop:     snap.Loop,
	}
	if snap.Loaded {
		s.Title = displayTitle(snap.Info, snap.Path)
		s.Artist = snap.Info.Artist
		s.Album = snap.Info.Album
	}
	return s
}

// WithScrub returns s showing target instead of the engine position.
func (s State) WithScrub(target float64) State {
	s.Scrubbing = true
	s.ScrubTarget = max(0, min(1, target))
	return s
}

func displayTitle(info loader.TrackInfo, path string) string {
	if info.Title != "" {
		return info.Title
	}
	return filepath.Base(path)
}

// Render returns the player bar string for the given width.
func Render(s State, width int) string {
	t := styles.T()
	inner := max(width-4, 10) // border + padding

	right := renderRight(s)
	top := render.Row(renderHeader(s, inner-visibleWidth(right)-1), right, inner)
	bottom := renderTimeline(s, inner)

	return t.S().Panel.Padding(0, 1).Width(width - 2).Render(top + "\n" + bottom)
}

func renderHeader(s State, width int) string {
	t := styles.T()
	status := statusSymbol(s.Status)
	if !s.Loaded {
		return t.S().Subtle.Render(status + " " + render.Truncate(noTrack, width-2))
	}

	avail := max(width-2, 1)
	title := render.Truncate(s.Title, avail)
	header := styles.Gradient(title, t.Primary, t.Secondary, true)

	var info []string
	if s.Artist != "" {
		info = append(info, s.Artist)
	}
	if s.Album != "" {
		info = append(info, s.Album)
	}
	if rest := avail - visibleWidth(title) - 3; len(info) > 0 && rest > 3 {
		header += "   " + t.S().Muted.Render(render.Truncate(strings.Join(info, " · "), rest))
	}
	return t.S().Playing.Render(status) + " " + header
}

func renderRight(s State) string {
	t := styles.T()
	vol := RenderVolume(s.Volume)
	if s.Loop {
		return t.S().Playing.Render(loopSymbol+" Loop") + "  " + t.S().Muted.Render(vol)
	}
	return t.S().Muted.Render(vol)
}

func renderTimeline(s State, width int) string {
	pos, progress := s.Position, s.Progress
	if s.Scrubbing {
		progress = s.ScrubTarget
		pos = s.ScrubTarget * s.Duration
	}
	return RenderProgressBar(pos, s.Duration, progress, width)
}

func statusSymbol(st player.State) string {
	switch st {
	case player.Playing:
		return playSymbol
	case player.Paused:
		return pauseSymbol
	default:
		return stopSymbol
	}
}
