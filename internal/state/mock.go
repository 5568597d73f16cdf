// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	dir       string
	volume    float64
	hasVolume bool
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) LastDirectory() (string, error) { return m.dir, nil }

func (m *Mock) SaveLastDirectory(path string) error {
	m.dir = path
	return nil
}

func (m *Mock) LastVolume() (float64, bool, error) {
	return m.volume, m.hasVolume, nil
}

func (m *Mock) SaveVolume(volume float64) {
	m.volume = volume
	m.hasVolume = true
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
