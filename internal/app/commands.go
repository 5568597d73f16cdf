package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/player"
)

// watchSnapshots waits for the next engine snapshot.
func watchSnapshots(sub *player.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case snap := <-sub.Snapshots:
			return SnapshotMsg(snap)
		case <-sub.Done:
			return EngineClosedMsg{}
		}
	}
}

// watchErrors waits for the next engine error event.
func watchErrors(sub *player.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-sub.Errors:
			return EngineErrorMsg(ev)
		case <-sub.Done:
			return nil
		}
	}
}

func scanFolderCmd(l *loader.Loader, dir string) tea.Cmd {
	return func() tea.Msg {
		fi, err := os.Stat(dir)
		if err != nil {
			return FolderScannedMsg{Dir: dir, Err: err}
		}
		if !fi.IsDir() {
			return FolderScannedMsg{Dir: dir, Err: fmt.Errorf("%s is not a folder", dir)}
		}
		return FolderScannedMsg{Dir: dir, Files: l.ListPlayableFiles(dir)}
	}
}

// loadFileCmd decodes off the UI goroutine; large files take a while.
func loadFileCmd(e player.Interface, path string) tea.Cmd {
	return func() tea.Msg {
		return LoadDoneMsg{Path: path, Err: e.Load(path)}
	}
}
