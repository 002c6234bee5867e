// Package config loads tokei settings and resolves the paths of the external
// data stores.
package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultAnkiProfile is used when config.json is missing or malformed.
	DefaultAnkiProfile = "User 1"
	// DefaultKnownIntervalDays is the spaced-repetition interval at or above
	// which a morph counts as known.
	DefaultKnownIntervalDays = 21
)

// Config holds the settings consumed by the comparison run. Values come from
// <root>/config.json with environment overrides; any load problem recovers to
// the documented defaults rather than failing the run.
type Config struct {
	AnkiProfile string `json:"anki_profile" env:"TOKEI_ANKI_PROFILE"`
	AnkiMorphs  struct {
		KnownIntervalDays int `json:"known_interval_days" env:"TOKEI_KNOWN_INTERVAL_DAYS"`
	} `json:"ankimorphs"`
}

// Default returns a Config carrying only the documented defaults.
func Default() Config {
	var cfg Config
	cfg.AnkiProfile = DefaultAnkiProfile
	cfg.AnkiMorphs.KnownIntervalDays = DefaultKnownIntervalDays
	return cfg
}

// Load reads <root>/config.json. Missing file, unparseable content, or
// out-of-range values degrade to defaults with a warning; configuration
// problems are never fatal.
func Load(root string, log *logrus.Logger) Config {
	cfg := Default()
	path := filepath.Join(root, "config.json")

	if _, err := os.Stat(path); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil && log != nil {
			log.Warnf("read config env: %v", err)
		}
		return sanitize(cfg, log)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if log != nil {
			log.Warnf("read %s: %v; using defaults", path, err)
		}
		cfg = Default()
		if err := cleanenv.ReadEnv(&cfg); err != nil && log != nil {
			log.Warnf("read config env: %v", err)
		}
	}
	return sanitize(cfg, log)
}

func sanitize(cfg Config, log *logrus.Logger) Config {
	if cfg.AnkiProfile == "" {
		cfg.AnkiProfile = DefaultAnkiProfile
	}
	if cfg.AnkiMorphs.KnownIntervalDays <= 0 {
		if log != nil && cfg.AnkiMorphs.KnownIntervalDays < 0 {
			log.Warnf("known_interval_days must be positive; using %d", DefaultKnownIntervalDays)
		}
		cfg.AnkiMorphs.KnownIntervalDays = DefaultKnownIntervalDays
	}
	return cfg
}
