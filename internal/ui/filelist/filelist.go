// Package filelist renders the playable files of one directory with a
// movable cursor.
package filelist

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/waves-lite/internal/ui/render"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

const (
	loadedMarker = "♪ "
	markerWidth  = 2
	sizeColumn   = 10
)

// Entry is one playable file.
type Entry struct {
	Path string
	Name string
	Size int64 // -1 when the file could not be stat'ed
}

// Model holds the list and its viewport. The zero value is an empty list.
type Model struct {
	dir     string
	entries []Entry
	cursor  int
	offset  int
	width   int
	height  int
	loaded  string
}

func New() Model {
	return Model{}
}

// SetFiles replaces the list with paths (already filtered and ordered).
// The cursor stays on the same file when it is still present.
func (m *Model) SetFiles(dir string, paths []string) {
	prev, hadPrev := m.Selected()

	m.dir = dir
	m.entries = make([]Entry, 0, len(paths))
	for _, p := range paths {
		e := Entry{Path: p, Name: filepath.Base(p), Size: -1}
		if fi, err := os.Stat(p); err == nil {
			e.Size = fi.Size()
		}
		m.entries = append(m.entries, e)
	}

	m.cursor, m.offset = 0, 0
	if hadPrev {
		m.Select(prev.Path)
	}
	m.clamp()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// SetLoaded marks path as the file currently loaded in the engine.
func (m *Model) SetLoaded(path string) {
	m.loaded = path
}

func (m Model) Dir() string { return m.dir }

func (m Model) Len() int { return len(m.entries) }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Offset() int { return m.offset }

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Select moves the cursor to path. Returns false if it is not listed.
func (m *Model) Select(path string) bool {
	for i, e := range m.entries {
		if e.Path == path {
			m.cursor = i
			m.clamp()
			return true
		}
	}
	return false
}

func (m *Model) Move(delta int) {
	m.cursor += delta
	m.clamp()
}

// Page moves by one screen; dir is -1 or +1.
func (m *Model) Page(dir int) {
	m.Move(dir * max(m.rows(), 1))
}

func (m *Model) Top() {
	m.cursor = 0
	m.clamp()
}

func (m *Model) Bottom() {
	m.cursor = len(m.entries) - 1
	m.clamp()
}

// rows is the number of visible entries (one line goes to the header).
func (m Model) rows() int {
	return max(m.height-1, 0)
}

func (m *Model) clamp() {
	if len(m.entries) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = max(0, min(m.cursor, len(m.entries)-1))

	rows := m.rows()
	if rows == 0 {
		m.offset = m.cursor
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(0, min(m.offset, len(m.entries)-rows))
}

// View renders the header and the visible rows, height lines in total.
func (m Model) View() string {
	t := styles.T()
	width := max(m.width, 20)

	lines := make([]string, 0, max(m.height, 1))
	header := m.dir
	if header == "" {
		header = "No folder open"
	}
	lines = append(lines, t.S().Title.Render(render.Truncate(header, width)))

	if len(m.entries) == 0 {
		if m.dir != "" {
			lines = append(lines, t.S().Subtle.Render(render.Truncate("No playable files", width)))
		}
		return strings.Join(lines, "\n")
	}

	end := min(m.offset+m.rows(), len(m.entries))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.entries[i], i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(e Entry, selected bool, width int) string {
	t := styles.T()

	marker := "  "
	if e.Path == m.loaded {
		marker = loadedMarker
	}

	size := ""
	if e.Size >= 0 {
		size = humanize.IBytes(uint64(e.Size))
	}
	nameWidth := max(width-markerWidth-sizeColumn-1, 1)
	row := marker + render.Fit(e.Name, nameWidth) + " " + leftPad(size, sizeColumn)

	switch {
	case selected:
		return t.S().Cursor.Render(row)
	case e.Path == m.loaded:
		return t.S().Playing.Render(row)
	default:
		return t.S().Base.Render(row)
	}
}

func leftPad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
