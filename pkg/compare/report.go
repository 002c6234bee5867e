// Package compare reconciles known-word statistics across the spreadsheet
// exports, the AnkiMorphs database, and the tokei words database.
package compare

import "github.com/tokei-go/tokei/pkg/knownlist"

// ChangedPair is one surface whose joined lemma differs from it.
type ChangedPair struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
}

// AnkiStats are the counts taken from the AnkiMorphs Morphs table. Nil fields
// mean the statistic could not be computed; zero is always a real count.
type AnkiStats struct {
	Rows     *int `json:"rows,omitempty"`
	Lemmas   *int `json:"lemmas,omitempty"`
	Surfaces *int `json:"surfaces,omitempty"`
	// Filtered is true when the counts honor the known-interval threshold;
	// false means the interval column was absent and all rows were counted.
	Filtered bool `json:"filtered"`
}

// WordsStats are the counts taken from the tokei words database.
type WordsStats struct {
	Lemmas          *int          `json:"lemmas,omitempty"`
	Surfaces        *int          `json:"surfaces,omitempty"`
	ChangedSurfaces *int          `json:"changed_surfaces,omitempty"`
	ChangedSamples  []ChangedPair `json:"changed_samples,omitempty"`
	LemmaCollisions *int          `json:"lemma_collisions,omitempty"`
}

// Report is the aggregate comparison result. It is constructed fresh per run
// and not mutated afterwards. Every statistic is independently optional: a
// missing source leaves its fields nil and adds a note, and never suppresses
// statistics derivable from the other sources.
type Report struct {
	Files          []knownlist.Summary `json:"files,omitempty"`
	CombinedUnique *int                `json:"combined_unique,omitempty"`
	IntervalDays   int                 `json:"interval_days"`
	Anki           AnkiStats           `json:"ankimorphs"`
	Words          WordsStats          `json:"words"`
	// LemmaDiff is words lemma count minus AnkiMorphs lemma count; present
	// only when both sides produced one. May be negative.
	LemmaDiff *int     `json:"lemma_diff,omitempty"`
	Notes     []string `json:"notes,omitempty"`
}

func intPtr(n int) *int { return &n }
