package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestDB creates a single-connection in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestPreference_Empty(t *testing.T) {
	db := setupTestDB(t)

	v, ok, err := getPreference(db, keyLastDirectory)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPreference_Upsert(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, setPreference(db, keyLastDirectory, "/music/a"))
	require.NoError(t, setPreference(db, keyLastDirectory, "/music/b"))

	v, ok, err := getPreference(db, keyLastDirectory)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/music/b", v)
}

func TestLastVolume_DecimalString(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, saveVolume(db, 0.35))

	raw, _, err := getPreference(db, keyLastVolume)
	require.NoError(t, err)
	assert.Equal(t, "0.35", raw)

	v, ok, err := lastVolume(db)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.35, v, 1e-12)
}

func TestLastVolume_Unparsable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "loud"},
		{"empty", ""},
		{"nan", "NaN"},
		{"inf", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			require.NoError(t, setPreference(db, keyLastVolume, tt.raw))

			_, ok, err := lastVolume(db)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestLastVolume_ClampsStoredValue(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, setPreference(db, keyLastVolume, "1.7"))

	v, ok, err := lastVolume(db)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, v, 0)
}

func TestManager_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, m.SaveLastDirectory("/music/jazz"))
	m.SaveVolume(0.2)
	m.SaveVolume(0.65)
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	dir, err := m.LastDirectory()
	require.NoError(t, err)
	assert.Equal(t, "/music/jazz", dir)

	v, ok, err := m.LastVolume()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.65, v, 1e-12)
}

func TestManager_SaveVolumeDebounced(t *testing.T) {
	m, err := OpenPath(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer m.Close()

	m.SaveVolume(0.4)

	assert.Eventually(t, func() bool {
		v, ok, err := m.LastVolume()
		return err == nil && ok && v == 0.4
	}, 5*saveDebounce, 10*time.Millisecond)
}

func TestManager_EmptyDatabase(t *testing.T) {
	m, err := OpenPath(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer m.Close()

	dir, err := m.LastDirectory()
	require.NoError(t, err)
	assert.Empty(t, dir)

	_, ok, err := m.LastVolume()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMock(t *testing.T) {
	m := NewMock()

	_, ok, _ := m.LastVolume()
	assert.False(t, ok)

	m.SaveVolume(0.9)
	v, ok, _ := m.LastVolume()
	assert.True(t, ok)
	assert.InDelta(t, 0.9, v, 0)

	require.NoError(t, m.SaveLastDirectory("/x"))
	dir, _ := m.LastDirectory()
	assert.Equal(t, "/x", dir)

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
