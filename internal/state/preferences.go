package state

import (
	"database/sql"
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	keyLastDirectory = "last_directory"
	keyLastVolume    = "last_volume"
)

func getPreference(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value.String, value.Valid, nil
}

func setPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// lastVolume reads the saved volume. A missing or unparsable value reports
// ok=false so the caller falls back to its default.
func lastVolume(db *sql.DB) (float64, bool, error) {
	raw, ok, err := getPreference(db, keyLastVolume)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, nil //nolint:nilerr // garbage in the store is not fatal
	}
	return max(0, min(1, v)), true, nil
}

func saveVolume(db *sql.DB, volume float64) error {
	return setPreference(db, keyLastVolume, strconv.FormatFloat(volume, 'f', -1, 64))
}
