package syncer

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/tokei-go/tokei/pkg/db"
	"github.com/tokei-go/tokei/pkg/morph"
)

func setupWordsDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	if err := db.InitWordsDB(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestRunPopulatesBothPhases(t *testing.T) {
	conn := setupWordsDB(t)
	lem, err := morph.NewLemmatizer()
	if err != nil {
		t.Fatalf("lemmatizer: %v", err)
	}

	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "word\n走った\n走る\n")

	stats, err := New(conn, lem, quietLogger()).Run([]string{a})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Surfaces != 2 || stats.Lexemes != 2 {
		t.Errorf("stats = %+v, want 2 surfaces and 2 lexemes", stats)
	}

	store := db.NewStore(conn)
	surfaces, err := store.CountDistinct("lexemes", "normalized_surface")
	if err != nil {
		t.Fatalf("count surfaces: %v", err)
	}
	if surfaces != 2 {
		t.Errorf("surfaces = %d, want 2", surfaces)
	}
	// 走った and 走る reduce to the same lemma.
	lemmas, err := store.CountDistinct("lemmas", "lemma")
	if err != nil {
		t.Fatalf("count lemmas: %v", err)
	}
	if lemmas != 1 {
		t.Errorf("lemmas = %d, want 1", lemmas)
	}
	links, err := store.CountRows("lexeme_lemmas")
	if err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 2 {
		t.Errorf("links = %d, want 2", links)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	conn := setupWordsDB(t)
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "学校\n食べる\n")

	sync := New(conn, nil, quietLogger())
	if _, err := sync.Run([]string{a}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := sync.Run([]string{a}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	store := db.NewStore(conn)
	surfaces, err := store.CountDistinct("lexemes", "normalized_surface")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if surfaces != 2 {
		t.Errorf("surfaces = %d after rerun, want 2", surfaces)
	}
}

func TestRunSkipsUnreadableFiles(t *testing.T) {
	conn := setupWordsDB(t)
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "学校\n")
	missing := filepath.Join(dir, "nope.csv")

	stats, err := New(conn, nil, quietLogger()).Run([]string{missing, a})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Files != 1 || stats.Surfaces != 1 {
		t.Errorf("stats = %+v, want 1 file and 1 surface", stats)
	}
}

func TestRunDeduplicatesAcrossFiles(t *testing.T) {
	conn := setupWordsDB(t)
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "学校\n食べる\n")
	b := writeCSV(t, dir, "b.csv", "食べる\n走る\n")

	stats, err := New(conn, nil, quietLogger()).Run([]string{a, b})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Surfaces != 3 {
		t.Errorf("surfaces = %d, want 3", stats.Surfaces)
	}
}
