package playerbar

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
	minBar      = 3
)

// RenderProgressBar renders "MM:SS ━━━━━──── MM:SS" in width cells.
// progress is clamped to [0, 1].
func RenderProgressBar(position, duration, progress float64, width int) string {
	t := styles.T()
	posStr := player.FormatTime(position)
	durStr := player.FormatTime(duration)

	barWidth := width - len(posStr) - len(durStr) - 2
	if barWidth < minBar {
		// Too narrow for bar, just show times
		return posStr + " / " + durStr
	}

	progress = max(0, min(1, progress))
	filled := min(int(float64(barWidth)*progress), barWidth)

	bar := t.S().Playing.Render(strings.Repeat(filledBlock, filled)) +
		t.S().Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return posStr + " " + bar + " " + durStr
}

func visibleWidth(s string) int {
	return ansi.StringWidth(s)
}
