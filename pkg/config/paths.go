package config

import (
	"os"
	"path/filepath"
	"strings"
)

// UserRoot resolves the tokei user directory: the TOKEI_USER_ROOT environment
// variable when set, otherwise the current working directory.
func UserRoot() string {
	if root := strings.TrimSpace(os.Getenv("TOKEI_USER_ROOT")); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// AnkiMorphsDBPath locates the AnkiMorphs database inside the Anki profile
// directory under APPDATA. Returns "" when APPDATA is unset; the caller
// reports the store as skipped.
func AnkiMorphsDBPath(profile string) string {
	appdata := os.Getenv("APPDATA")
	if appdata == "" {
		return ""
	}
	return filepath.Join(appdata, "Anki2", profile, "ankimorphs.db")
}

// WordsDBPath locates the tokei words database under the user root.
func WordsDBPath(root string) string {
	return filepath.Join(root, "cache", "tokei_words.sqlite")
}
