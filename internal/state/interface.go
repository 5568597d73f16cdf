// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LastDirectory() (string, error)
	SaveLastDirectory(path string) error
	LastVolume() (float64, bool, error)
	SaveVolume(volume float64)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
