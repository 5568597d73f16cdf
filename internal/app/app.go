// Package app contains the bubbletea model that drives the player.
package app

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waves-lite/internal/config"
	"github.com/llehouerou/waves-lite/internal/keymap"
	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/state"
	"github.com/llehouerou/waves-lite/internal/ui/filelist"
)

const (
	seekStep   = 5 // seconds
	volumeStep = 0.05
	scrubStep  = 0.02
)

// Deps are the collaborators the model drives.
type Deps struct {
	Engine player.Interface
	Loader *loader.Loader
	State  state.Interface
	Config *config.Config
	Log    zerolog.Logger
}

type Model struct {
	engine player.Interface
	loader *loader.Loader
	state  state.Interface
	cfg    *config.Config
	log    zerolog.Logger

	keys   keymap.KeyMap
	help   help.Model
	files  filelist.Model
	prompt textinput.Model

	sub      *player.Subscription
	snap     player.Snapshot
	startDir string

	prompting   bool
	scrubbing   bool
	scrubTarget float64
	scrubOrigin float64

	status    string
	statusErr bool

	width  int
	height int
}

func New(d Deps) Model {
	prompt := textinput.New()
	prompt.Prompt = "Open folder: "
	prompt.CharLimit = 4096

	m := Model{
		engine:   d.Engine,
		loader:   d.Loader,
		state:    d.State,
		cfg:      d.Config,
		log:      d.Log,
		keys:     keymap.Default,
		help:     help.New(),
		files:    filelist.New(),
		prompt:   prompt,
		startDir: ResolveStartDir(d.State, d.Config),
	}
	m.sub = d.Engine.Subscribe()
	m.snap = d.Engine.Snapshot()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		watchSnapshots(m.sub),
		watchErrors(m.sub),
		scanFolderCmd(m.loader, m.startDir),
	)
}

// ResolveStartDir picks the folder shown at startup: the last opened
// folder if it still exists, then the configured default, then the
// working directory.
func ResolveStartDir(st state.Interface, cfg *config.Config) string {
	if dir, err := st.LastDirectory(); err == nil && isDir(dir) {
		return dir
	}
	if cfg != nil && isDir(cfg.DefaultFolder) {
		return cfg.DefaultFolder
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// InitialVolume returns the saved volume, or the configured one when
// nothing usable was saved.
func InitialVolume(st state.Interface, cfg *config.Config) float64 {
	if v, ok, err := st.LastVolume(); err == nil && ok {
		return v
	}
	if cfg == nil {
		return (&config.Config{}).GetInitialVolume()
	}
	return cfg.GetInitialVolume()
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
