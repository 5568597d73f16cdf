package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

// listHeight is what is left for the file list once the status line,
// player bar and help are laid out.
func (m Model) listHeight() int {
	return max(m.height-playerbar.Height()-1-m.helpHeight(), 2)
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	bar := playerbar.NewState(m.snap)
	if m.scrubbing {
		bar = bar.WithScrub(m.scrubTarget)
	}

	parts := []string{
		lipgloss.NewStyle().Height(m.listHeight()).MaxHeight(m.listHeight()).Render(m.files.View()),
		m.statusLine(),
		playerbar.Render(bar, m.width),
		m.help.View(m.keys),
	}
	return strings.Join(parts, "\n")
}

func (m Model) statusLine() string {
	t := styles.T()
	if m.prompting {
		return m.prompt.View()
	}
	if m.scrubbing {
		return t.S().Playing.Render(render.Truncate("Scrubbing: ←/→ move, enter seek, esc cancel", m.width))
	}
	if m.statusErr {
		return t.S().Error.Render(render.Truncate(m.status, m.width))
	}
	return t.S().Muted.Render(render.Truncate(m.status, m.width))
}
