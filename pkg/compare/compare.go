package compare

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/tokei-go/tokei/pkg/db"
	"github.com/tokei-go/tokei/pkg/knownlist"
)

// ErrNoInputs means every input was missing: no readable export file and
// neither store. The only caller-visible hard failure of a comparison run.
var ErrNoInputs = errors.New("no usable inputs: no export files and no stores")

const intervalColumn = "highest_inflection_learning_interval"

// changedSampleLimit bounds the example pairs carried in the report.
const changedSampleLimit = 20

// Comparator runs threshold-filtered counts and set diffs across the sources.
// IntervalDays is the spaced-repetition interval at or above which an
// AnkiMorphs row counts as known.
type Comparator struct {
	IntervalDays int
	Log          *logrus.Logger
}

// New returns a Comparator with the given known-interval threshold.
func New(intervalDays int, log *logrus.Logger) *Comparator {
	if log == nil {
		log = logrus.New()
	}
	return &Comparator{IntervalDays: intervalDays, Log: log}
}

func (c *Comparator) note(rep *Report, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Log.Warn(msg)
	rep.Notes = append(rep.Notes, msg)
}

// Run builds the comparison report. Each source is optional: a missing or
// unreadable source is noted and skipped while the others are still counted.
// Only the complete absence of inputs is an error.
func (c *Comparator) Run(files []string, ankiDBPath, wordsDBPath string) (*Report, error) {
	rep := &Report{IntervalDays: c.IntervalDays}
	usable := false

	var readable []string
	for _, path := range files {
		sum, err := knownlist.Summarize(path)
		if err != nil {
			c.note(rep, "export %s unreadable, skipping: %v", path, err)
			continue
		}
		rep.Files = append(rep.Files, sum)
		readable = append(readable, path)
	}
	if len(readable) > 0 {
		rep.CombinedUnique = intPtr(knownlist.UnionUnique(readable))
		usable = true
	}

	if opened := c.openStore(rep, "ankimorphs", ankiDBPath, c.compareAnki); opened {
		usable = true
	}
	if opened := c.openStore(rep, "words", wordsDBPath, c.compareWords); opened {
		usable = true
	}

	if !usable {
		return nil, ErrNoInputs
	}

	if rep.Words.Lemmas != nil && rep.Anki.Lemmas != nil {
		rep.LemmaDiff = intPtr(*rep.Words.Lemmas - *rep.Anki.Lemmas)
	}
	return rep, nil
}

// openStore opens one store read-only, runs fill against it, and closes it on
// every path. Returns whether the store was usable.
func (c *Comparator) openStore(rep *Report, name, path string, fill func(*db.Store, *Report)) bool {
	if path == "" {
		c.note(rep, "%s db location unknown, skipping", name)
		return false
	}
	store, err := db.OpenReadOnly(path)
	if errors.Is(err, db.ErrStoreMissing) {
		c.note(rep, "%s db not found, skipping: %s", name, path)
		return false
	}
	if err != nil {
		c.note(rep, "%s db unreadable, skipping: %v", name, err)
		return false
	}
	defer store.Close()

	fill(store, rep)
	return true
}

// compareAnki fills the AnkiMorphs side of the report. When the interval
// column is missing the query plan degrades, once, to unfiltered counts.
func (c *Comparator) compareAnki(store *db.Store, rep *Report) {
	ok, err := store.TableExists("Morphs")
	if err != nil {
		c.note(rep, "ankimorphs db: %v", err)
		return
	}
	if !ok {
		c.note(rep, "ankimorphs db missing Morphs table")
		return
	}

	hasInterval, err := store.ColumnExists("Morphs", intervalColumn)
	if err != nil {
		c.note(rep, "ankimorphs db: %v", err)
		return
	}
	if !hasInterval {
		c.note(rep, "ankimorphs Morphs table missing %s; counting all rows", intervalColumn)
	}

	plan := func(expr string) sq.SelectBuilder {
		b := sq.Select(expr).From("Morphs")
		if hasInterval {
			b = b.Where(sq.GtOrEq{intervalColumn: c.IntervalDays})
		}
		return b
	}

	counts := []struct {
		expr string
		dst  **int
	}{
		{"COUNT(*)", &rep.Anki.Rows},
		{"COUNT(DISTINCT lemma)", &rep.Anki.Lemmas},
		{"COUNT(DISTINCT inflection)", &rep.Anki.Surfaces},
	}
	for _, ct := range counts {
		query, args, err := plan(ct.expr).ToSql()
		if err != nil {
			c.note(rep, "ankimorphs db: build query: %v", err)
			return
		}
		n, err := store.QueryInt(query, args...)
		if err != nil {
			c.note(rep, "ankimorphs db: %v", err)
			return
		}
		*ct.dst = intPtr(n)
	}
	rep.Anki.Filtered = hasInterval
}

// compareWords fills the tokei words side of the report.
func (c *Comparator) compareWords(store *db.Store, rep *Report) {
	if ok, err := store.TableExists("lexemes"); err != nil {
		c.note(rep, "words db: %v", err)
		return
	} else if !ok {
		c.note(rep, "words db missing lexemes table; has a sync run?")
	} else {
		n, err := store.CountDistinct("lexemes", "normalized_surface")
		if err != nil {
			c.note(rep, "words db: %v", err)
			return
		}
		rep.Words.Surfaces = intPtr(n)
	}

	if ok, err := store.TableExists("lemmas"); err != nil {
		c.note(rep, "words db: %v", err)
		return
	} else if !ok {
		c.note(rep, "words db missing lemmas table; have lemmas been generated?")
		return
	}

	n, err := store.CountDistinct("lemmas", "lemma")
	if err != nil {
		c.note(rep, "words db: %v", err)
		return
	}
	rep.Words.Lemmas = intPtr(n)
	if n == 0 {
		c.note(rep, "words lemmas table is empty; lemmas not yet generated")
	}

	if ok, err := store.TableExists("lexeme_lemmas"); err != nil || !ok {
		if err != nil {
			c.note(rep, "words db: %v", err)
		}
		return
	}

	changed, err := store.QueryInt(`
		SELECT COUNT(*)
		FROM lexemes l
		JOIN lexeme_lemmas ll ON ll.lexeme_id = l.id
		JOIN lemmas le ON le.id = ll.lemma_id
		WHERE l.normalized_surface != le.lemma`)
	if err != nil {
		c.note(rep, "words db: %v", err)
		return
	}
	rep.Words.ChangedSurfaces = intPtr(changed)

	rows, err := store.Query(`
		SELECT DISTINCT l.normalized_surface, le.lemma
		FROM lexemes l
		JOIN lexeme_lemmas ll ON ll.lexeme_id = l.id
		JOIN lemmas le ON le.id = ll.lemma_id
		WHERE l.normalized_surface != le.lemma
		ORDER BY l.normalized_surface
		LIMIT ?`, changedSampleLimit)
	if err != nil {
		c.note(rep, "words db: %v", err)
		return
	}
	defer rows.Close()
	for rows.Next() {
		var pair ChangedPair
		if err := rows.Scan(&pair.Surface, &pair.Lemma); err != nil {
			c.note(rep, "words db: %v", err)
			return
		}
		rep.Words.ChangedSamples = append(rep.Words.ChangedSamples, pair)
	}
	if err := rows.Err(); err != nil {
		c.note(rep, "words db: %v", err)
		return
	}

	collisions, err := store.QueryInt(`
		SELECT COUNT(*)
		FROM (
			SELECT le.lemma
			FROM lexemes l
			JOIN lexeme_lemmas ll ON ll.lexeme_id = l.id
			JOIN lemmas le ON le.id = ll.lemma_id
			GROUP BY le.lemma
			HAVING COUNT(DISTINCT l.normalized_surface) > 1
		) collided`)
	if err != nil {
		c.note(rep, "words db: %v", err)
		return
	}
	rep.Words.LemmaCollisions = intPtr(collisions)
}
