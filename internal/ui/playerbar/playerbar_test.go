package playerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/pcm"
	"github.com/llehouerou/waves-lite/internal/player"
)

func loadedSnapshot() player.Snapshot {
	return player.Snapshot{
		State:    player.Playing,
		Loaded:   true,
		Path:     "/music/take_five.wav",
		Info:     loader.TrackInfo{Title: "Take Five", Artist: "Dave Brubeck", Album: "Time Out"},
		Format:   pcm.Format{SampleRate: 100, Channels: 2, BitDepth: 16, Frames: 1000},
		Frame:    250,
		Position: 2.5,
		Duration: 10,
		Volume:   0.5,
	}
}

func TestNewState_FromSnapshot(t *testing.T) {
	s := NewState(loadedSnapshot())

	assert.Equal(t, player.Playing, s.Status)
	assert.True(t, s.Loaded)
	assert.Equal(t, "Take Five", s.Title)
	assert.Equal(t, "Dave Brubeck", s.Artist)
	assert.InDelta(t, 0.25, s.Progress, 1e-12)
	assert.InDelta(t, 0.5, s.Volume, 0)
}

func TestNewState_TitleFallsBackToFileName(t *testing.T) {
	snap := loadedSnapshot()
	snap.Info = loader.TrackInfo{}

	assert.Equal(t, "take_five.wav", NewState(snap).Title)
}

func TestNewState_Empty(t *testing.T) {
	s := NewState(player.Snapshot{Volume: 0.5})
	assert.False(t, s.Loaded)
	assert.Empty(t, s.Title)
}

func TestRender_Loaded(t *testing.T) {
	out := ansi.Strip(Render(NewState(loadedSnapshot()), 80))

	assert.Contains(t, out, playSymbol)
	assert.Contains(t, out, "Take Five")
	assert.Contains(t, out, "00:02")
	assert.Contains(t, out, "00:10")
	assert.Contains(t, out, "Volume: 50%")
	assert.NotContains(t, out, "Loop")
	assert.Len(t, strings.Split(out, "\n"), Height())
}

func TestRender_NoTrack(t *testing.T) {
	out := ansi.Strip(Render(NewState(player.Snapshot{Volume: 1}), 60))

	assert.Contains(t, out, noTrack)
	assert.Contains(t, out, stopSymbol)
	assert.Contains(t, out, "00:00")
	assert.Contains(t, out, "Volume: 100%")
}

func TestRender_LoopAndPause(t *testing.T) {
	snap := loadedSnapshot()
	snap.State = player.Paused
	snap.Loop = true

	out := ansi.Strip(Render(NewState(snap), 80))
	assert.Contains(t, out, pauseSymbol)
	assert.Contains(t, out, "Loop")
}

func TestRender_ScrubShowsTarget(t *testing.T) {
	out := ansi.Strip(Render(NewState(loadedSnapshot()).WithScrub(0.8), 80))
	assert.Contains(t, out, "00:08")
}

func TestRender_LinesFitWidth(t *testing.T) {
	snap := loadedSnapshot()
	snap.Info.Title = strings.Repeat("Very Long Title ", 20)

	for _, width := range []int{30, 50, 120} {
		for _, line := range strings.Split(Render(NewState(snap), width), "\n") {
			assert.LessOrEqual(t, ansi.StringWidth(line), width, "width %d", width)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		progress   float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 22, 0},
		{"half", 0.5, 22, 5},
		{"full", 1, 22, 10},
		{"clamped above", 3, 22, 10},
		{"clamped below", -1, 22, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderProgressBar(0, 60, tt.progress, tt.width))
			assert.Equal(t, tt.wantFilled, strings.Count(out, filledBlock))
			assert.Equal(t, 10-tt.wantFilled, strings.Count(out, emptyBlock))
			assert.True(t, strings.HasPrefix(out, "00:00 "))
			assert.True(t, strings.HasSuffix(out, " 01:00"))
		})
	}
}

func TestRenderProgressBar_TooNarrow(t *testing.T) {
	assert.Equal(t, "00:05 / 00:10", RenderProgressBar(5, 10, 0.5, 12))
}

func TestRenderVolume(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0, "Volume: 0%"},
		{0.5, "Volume: 50%"},
		{0.555, "Volume: 56%"},
		{1, "Volume: 100%"},
		{1.4, "Volume: 100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderVolume(tt.volume))
	}
}
