package knownlist

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover locates known-word export files under the user root. When the
// canonical data directory holds any matching files, only those are used;
// otherwise the legacy single-file paths are checked in order and only
// existing ones returned.
func Discover(root string) []string {
	dataDir := filepath.Join(root, "data")
	if entries, err := os.ReadDir(dataDir); err == nil {
		var paths []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".csv", ".xlsx":
				paths = append(paths, filepath.Join(dataDir, e.Name()))
			}
		}
		if len(paths) > 0 {
			sort.Strings(paths)
			return paths
		}
	}

	legacy := []string{
		filepath.Join(root, "data", "known.csv"),
		filepath.Join(root, "data", "csv", "known.csv"),
		filepath.Join(root, "known.csv"),
	}
	var paths []string
	for _, p := range legacy {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			paths = append(paths, p)
		}
	}
	return paths
}
