package app

import (
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/config"
	"github.com/llehouerou/waves-lite/internal/errmsg"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/ui/playerbar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-len(m.prompt.Prompt)-1, 10)
		m.files.SetSize(msg.Width, m.listHeight())
		return m, nil

	case SnapshotMsg:
		m.snap = player.Snapshot(msg)
		m.files.SetLoaded(m.snap.Path)
		return m, watchSnapshots(m.sub)

	case EngineErrorMsg:
		m.setError(errmsg.FormatWith(opFor(msg.Operation), filepath.Base(msg.Path), msg.Err))
		return m, watchErrors(m.sub)

	case EngineClosedMsg:
		return m, nil

	case FolderScannedMsg:
		return m.handleFolderScanned(msg), nil

	case LoadDoneMsg:
		if msg.Err != nil {
			m.log.Debug().Err(msg.Err).Str("path", msg.Path).Msg("load finished with error")
			return m, nil
		}
		m.setStatus("Loaded " + filepath.Base(msg.Path))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if m.scrubbing {
		return m.handleScrubKey(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.SaveVolume(m.engine.Volume())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.files.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.files.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.files.Page(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.files.Page(1)
	case key.Matches(msg, m.keys.Top):
		m.files.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.files.Bottom()

	case key.Matches(msg, m.keys.Load):
		if e, ok := m.files.Selected(); ok {
			m.setStatus("Loading " + e.Name + "...")
			return m, loadFileCmd(m.engine, e.Path)
		}

	case key.Matches(msg, m.keys.Open):
		m.prompting = true
		m.prompt.SetValue(m.files.Dir())
		m.prompt.CursorEnd()
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keys.Refresh):
		if dir := m.files.Dir(); dir != "" {
			return m, scanFolderCmd(m.loader, dir)
		}

	case key.Matches(msg, m.keys.PlayPause):
		if m.requireLoaded() {
			m.engine.Toggle()
		}
	case key.Matches(msg, m.keys.Stop):
		if m.requireLoaded() {
			m.engine.Stop()
		}
	case key.Matches(msg, m.keys.Loop):
		m.engine.ToggleLoop()

	case key.Matches(msg, m.keys.SeekBack):
		if m.requireLoaded() {
			m.engine.SeekBy(-seekStep * time.Second)
		}
	case key.Matches(msg, m.keys.SeekForward):
		if m.requireLoaded() {
			m.engine.SeekBy(seekStep * time.Second)
		}

	case key.Matches(msg, m.keys.ScrubBack):
		m.beginScrub(-scrubStep)
	case key.Matches(msg, m.keys.ScrubFwd):
		m.beginScrub(scrubStep)

	case key.Matches(msg, m.keys.VolumeUp):
		m.changeVolume(volumeStep)
	case key.Matches(msg, m.keys.VolumeDown):
		m.changeVolume(-volumeStep)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.files.SetSize(m.width, m.listHeight())
	}

	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // only enter and esc end the prompt
	case tea.KeyEnter:
		m.prompting = false
		m.prompt.Blur()
		dir := strings.TrimSpace(m.prompt.Value())
		if dir == "" {
			return m, nil
		}
		return m, scanFolderCmd(m.loader, config.ExpandPath(dir))
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) beginScrub(step float64) {
	if !m.requireLoaded() {
		return
	}
	m.engine.BeginScrub()
	m.scrubbing = true
	m.scrubOrigin = m.snap.Progress()
	m.scrubTarget = clamp01(m.scrubOrigin + step)
}

func (m Model) handleScrubKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.ScrubBack), key.Matches(msg, m.keys.SeekBack):
		m.scrubTarget = clamp01(m.scrubTarget - scrubStep)
	case key.Matches(msg, m.keys.ScrubFwd), key.Matches(msg, m.keys.SeekForward):
		m.scrubTarget = clamp01(m.scrubTarget + scrubStep)
	case key.Matches(msg, m.keys.Commit):
		m.endScrub(m.scrubTarget)
	case key.Matches(msg, m.keys.Cancel):
		m.endScrub(m.scrubOrigin)
	}
	return m
}

func (m *Model) endScrub(fraction float64) {
	m.scrubbing = false
	if err := m.engine.EndScrub(fraction); err != nil {
		m.setError(errmsg.Format(errmsg.OpPlaybackSeek, err))
	}
}

func (m *Model) changeVolume(delta float64) {
	v := clamp01(math.Round((m.engine.Volume()+delta)*100) / 100)
	if err := m.engine.SetVolume(v); err != nil {
		m.setError(errmsg.Format(errmsg.OpVolumeChange, err))
		return
	}
	m.state.SaveVolume(v)
	m.setStatus(playerbar.RenderVolume(v))
}

func (m Model) handleFolderScanned(msg FolderScannedMsg) Model {
	if msg.Err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpFolderOpen, msg.Dir, msg.Err))
		return m
	}
	m.files.SetFiles(msg.Dir, msg.Files)
	if err := m.state.SaveLastDirectory(msg.Dir); err != nil {
		m.log.Warn().Err(err).Str("dir", msg.Dir).Msg("save last directory")
	}
	m.log.Info().Str("dir", msg.Dir).Int("files", len(msg.Files)).Msg("folder opened")
	m.setStatus("")
	return m
}

// requireLoaded reports whether a file is loaded and sets a hint if not.
func (m *Model) requireLoaded() bool {
	if m.snap.Loaded {
		return true
	}
	m.setStatus("No file loaded. Select one and press enter.")
	return false
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func opFor(operation string) errmsg.Op {
	if operation == "load" {
		return errmsg.OpFileLoad
	}
	return errmsg.Op(operation)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
