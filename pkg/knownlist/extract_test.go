package knownlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExtractCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "known.csv", "word\n学校\n食べる\n")

	rawRows, surfaces, err := Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if rawRows != 3 {
		t.Errorf("rawRows = %d, want 3", rawRows)
	}
	if len(surfaces) != 2 || surfaces[0] != "学校" || surfaces[1] != "食べる" {
		t.Errorf("surfaces = %v", surfaces)
	}
}

func TestExtractCSVWithBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "known.csv", "\xef\xbb\xbf学校\n食べる\n")

	_, surfaces, err := Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(surfaces) != 2 || surfaces[0] != "学校" {
		t.Errorf("BOM not stripped: surfaces = %v", surfaces)
	}
}

func TestExtractXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "known.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range [][]interface{}{{"word", "reading"}, {"学校", "がっこう"}, {"走る", "はしる"}} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	f.Close()

	rawRows, surfaces, err := Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if rawRows != 3 {
		t.Errorf("rawRows = %d, want 3", rawRows)
	}
	if len(surfaces) != 2 || surfaces[0] != "学校" || surfaces[1] != "走る" {
		t.Errorf("surfaces = %v", surfaces)
	}
}

// Two input files: header row in a.csv skipped, 食べる deduplicated across files.
func TestSummaryAndUnionAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "word\n学校\n食べる\n")
	b := writeFile(t, dir, "b.csv", "食べる\n走る\n")

	sa, err := Summarize(a)
	if err != nil {
		t.Fatalf("summarize a: %v", err)
	}
	sb, err := Summarize(b)
	if err != nil {
		t.Fatalf("summarize b: %v", err)
	}
	if sa.UniqueSurfaces != 2 {
		t.Errorf("a.csv unique = %d, want 2", sa.UniqueSurfaces)
	}
	if sb.UniqueSurfaces != 2 {
		t.Errorf("b.csv unique = %d, want 2", sb.UniqueSurfaces)
	}

	union := UnionUnique([]string{a, b})
	if union != 3 {
		t.Errorf("union = %d, want 3", union)
	}
	// Union is never smaller than any per-file distinct count.
	if union < sa.UniqueSurfaces || union < sb.UniqueSurfaces {
		t.Errorf("union %d smaller than per-file distinct (%d, %d)", union, sa.UniqueSurfaces, sb.UniqueSurfaces)
	}
}

func TestUnionIdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "学校\n食べる\n")
	b := writeFile(t, dir, "b.csv", "学校\n食べる\n")

	sa, err := Summarize(a)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if union := UnionUnique([]string{a, b}); union != sa.UniqueSurfaces {
		t.Errorf("union = %d, want %d for identical files", union, sa.UniqueSurfaces)
	}
}

func TestUnionSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "学校\n")
	missing := filepath.Join(dir, "nope.csv")

	if union := UnionUnique([]string{a, missing}); union != 1 {
		t.Errorf("union = %d, want 1 (missing file skipped)", union)
	}
}

func TestDiscoverDataDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dataDir, "b.csv", "学校\n")
	writeFile(t, dataDir, "a.csv", "学校\n")
	writeFile(t, dataDir, "notes.txt", "ignored")

	paths := Discover(root)
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 csv files", paths)
	}
	if filepath.Base(paths[0]) != "a.csv" || filepath.Base(paths[1]) != "b.csv" {
		t.Errorf("paths not sorted: %v", paths)
	}
}

func TestDiscoverLegacyFallback(t *testing.T) {
	root := t.TempDir()
	// Empty data dir: fall back to legacy locations.
	if err := os.MkdirAll(filepath.Join(root, "data", "csv"), 0755); err != nil {
		t.Fatal(err)
	}
	legacy := writeFile(t, filepath.Join(root, "data", "csv"), "known.csv", "学校\n")
	rootLegacy := writeFile(t, root, "known.csv", "学校\n")

	paths := Discover(root)
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want both legacy files", paths)
	}
	if paths[0] != legacy || paths[1] != rootLegacy {
		t.Errorf("unexpected legacy order: %v", paths)
	}
}

func TestDiscoverNothing(t *testing.T) {
	if paths := Discover(t.TempDir()); len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}
