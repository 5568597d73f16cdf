package app

import "github.com/llehouerou/waves-lite/internal/player"

// SnapshotMsg carries the latest engine state.
type SnapshotMsg player.Snapshot

// EngineErrorMsg reports a failed engine command.
type EngineErrorMsg player.ErrorEvent

// EngineClosedMsg is sent once the engine shuts down.
type EngineClosedMsg struct{}

// FolderScannedMsg is the result of listing a folder.
type FolderScannedMsg struct {
	Dir   string
	Files []string
	Err   error
}

// LoadDoneMsg is sent when a load finishes. Failures also arrive as
// EngineErrorMsg through the subscription.
type LoadDoneMsg struct {
	Path string
	Err  error
}
