// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the player reacts to.
type KeyMap struct {
	// File list
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Load     key.Binding
	Open     key.Binding
	Refresh  key.Binding

	// Playback
	PlayPause   key.Binding
	Stop        key.Binding
	Loop        key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	ScrubBack   key.Binding
	ScrubFwd    key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.PlayPause, k.Stop, k.SeekForward, k.VolumeUp, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Load, k.Open, k.Refresh},
		{k.PlayPause, k.Stop, k.Loop, k.SeekBack, k.SeekForward},
		{k.ScrubBack, k.ScrubFwd, k.Commit, k.Cancel},
		{k.VolumeUp, k.VolumeDown, k.Help, k.Quit},
	}
}

// Default is the stock key map.
var Default = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first file"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last file"),
	),
	Load: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open folder"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rescan folder"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	Loop: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "loop"),
	),
	SeekBack: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "seek -5s"),
	),
	SeekForward: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "seek +5s"),
	),
	ScrubBack: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("H", "scrub back"),
	),
	ScrubFwd: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("L", "scrub forward"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "seek to scrub"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	VolumeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "volume up"),
	),
	VolumeDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "volume down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
