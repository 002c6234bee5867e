// Package syncer populates the tokei words database from known-word exports:
// phase 1 records each distinct surface as a lexeme, phase 2 generates the
// lemma for each surface and links the two.
package syncer

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tokei-go/tokei/pkg/db"
	"github.com/tokei-go/tokei/pkg/knownlist"
	"github.com/tokei-go/tokei/pkg/morph"
)

// Stats summarizes one sync run.
type Stats struct {
	Files    int
	Surfaces int
	Lexemes  int
	Lemmas   int
	Links    int
}

// Syncer writes extracted surfaces and their lemmas into the words database.
type Syncer struct {
	DB         *sql.DB
	Lemmatizer *morph.Lemmatizer
	Log        *logrus.Logger
	// BatchSize bounds how many surfaces are written per transaction.
	BatchSize int
}

// New returns a Syncer with the default batch size.
func New(conn *sql.DB, lem *morph.Lemmatizer, log *logrus.Logger) *Syncer {
	if log == nil {
		log = logrus.New()
	}
	return &Syncer{DB: conn, Lemmatizer: lem, Log: log, BatchSize: 200}
}

// Run extracts surfaces from the given export files and upserts them into the
// words database. A file that cannot be read is skipped with a warning; the
// write itself is transactional per batch.
func (s *Syncer) Run(paths []string) (Stats, error) {
	var stats Stats

	seen := make(map[string]struct{})
	var surfaces []string
	for _, path := range paths {
		_, extracted, err := knownlist.Extract(path)
		if err != nil {
			s.Log.Warnf("export %s unreadable, skipping: %v", path, err)
			continue
		}
		stats.Files++
		for _, surface := range extracted {
			if _, dup := seen[surface]; dup {
				continue
			}
			seen[surface] = struct{}{}
			surfaces = append(surfaces, surface)
		}
	}
	stats.Surfaces = len(surfaces)

	batch := s.BatchSize
	if batch <= 0 {
		batch = 200
	}
	for start := 0; start < len(surfaces); start += batch {
		end := start + batch
		if end > len(surfaces) {
			end = len(surfaces)
		}
		if err := s.writeBatch(surfaces[start:end], &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (s *Syncer) writeBatch(surfaces []string, stats *Stats) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	for _, surface := range surfaces {
		lexID, err := db.CreateOrGetLexeme(tx, surface)
		if err != nil {
			return err
		}
		stats.Lexemes++

		lemma := surface
		if s.Lemmatizer != nil {
			lemma = s.Lemmatizer.Lemma(surface)
		}
		if lemma == "" {
			continue
		}
		lemID, err := db.CreateOrGetLemma(tx, lemma)
		if err != nil {
			return err
		}
		stats.Lemmas++

		if err := db.LinkLexemeLemma(tx, lexID, lemID); err != nil {
			return err
		}
		stats.Links++
	}

	return tx.Commit()
}
