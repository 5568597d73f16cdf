package loader

import (
	"os"
	"slices"
	"strings"
)

// ListPlayableFiles returns the names (not paths) of the playable files in
// dir. Subdirectories and hidden files are skipped. A missing, unreadable
// or non-directory path yields an empty list.
func (l *Loader) ListPlayableFiles(dir string) []string {
	f, err := os.Open(dir)
	if err != nil {
		return []string{}
	}
	defer f.Close()

	// File.ReadDir keeps enumeration order, unlike os.ReadDir.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !l.IsPlayable(name) {
			continue
		}
		names = append(names, name)
	}

	if l.sorted {
		slices.SortFunc(names, func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
	}
	return names
}
