package knownlist

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Summary describes one known-word export file.
type Summary struct {
	Path           string `json:"path"`
	RawRows        int    `json:"raw_rows"`
	Surfaces       int    `json:"surfaces"`
	UniqueSurfaces int    `json:"unique_surfaces"`
}

// Extract reads one export file and returns its raw row count and the ordered
// surfaces found after the header rows. CSV and XLSX (first sheet) are
// supported, chosen by extension.
func Extract(path string) (int, []string, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return 0, nil, err
	}
	return len(rows), Surfaces(rows), nil
}

// Summarize extracts one file and reduces it to its counts.
func Summarize(path string) (Summary, error) {
	rawRows, surfaces, err := Extract(path)
	if err != nil {
		return Summary{}, err
	}
	unique := make(map[string]struct{}, len(surfaces))
	for _, s := range surfaces {
		unique[s] = struct{}{}
	}
	return Summary{
		Path:           path,
		RawRows:        rawRows,
		Surfaces:       len(surfaces),
		UniqueSurfaces: len(unique),
	}, nil
}

// UnionUnique returns the size of the set union of surfaces across the given
// files. A file that cannot be read or parsed is skipped, not fatal.
func UnionUnique(paths []string) int {
	union := make(map[string]struct{})
	for _, path := range paths {
		_, surfaces, err := Extract(path)
		if err != nil {
			continue
		}
		for _, s := range surfaces {
			union[s] = struct{}{}
		}
	}
	return len(union)
}

func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx %s: %w", path, err)
	}
	return rows, nil
}
