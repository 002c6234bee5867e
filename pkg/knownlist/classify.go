// Package knownlist extracts known-word surfaces from exported spreadsheets.
//
// Exports come from a variety of tools (Anki add-ons, hand-maintained sheets)
// and declare no schema: header rows may or may not exist, and only the first
// column is meaningful. Header detection is heuristic, based on the observation
// that real data in these exports is Japanese while metadata rows are Latin.
package knownlist

import (
	"strings"

	"github.com/tokei-go/tokei/pkg/textnorm"
)

// headerLabels are first-cell values that identify a header row outright.
var headerLabels = map[string]struct{}{
	"word":           {},
	"words":          {},
	"surface":        {},
	"expression":     {},
	"lexeme":         {},
	"lemma":          {},
	"lemmas":         {},
	"dictform":       {},
	"dict_form":      {},
	"dictionaryform": {},
}

// headerHints are substrings that mark a Latin first cell as header-ish.
var headerHints = []string{
	"word",
	"surface",
	"expression",
	"lexeme",
	"lemma",
	"morph",
	"dictform",
	"dict_form",
	"hascard",
	"reading",
	"translation",
}

// rowContext is the evidence a header rule may consult for one candidate row.
type rowContext struct {
	// first is the normalized first cell of the candidate row.
	first string
	// rest are the raw remaining cells of the candidate row.
	rest []string
	// nextFirst is the normalized first cell of the next non-empty row, "" if none.
	nextFirst string
}

// headerRule is a single independent predicate. Rules are evaluated in order
// with short-circuit semantics; the first match classifies the row as header.
type headerRule struct {
	name  string
	match func(rowContext) bool
}

// headerRules, in evaluation order. Each rule targets one metadata pattern
// seen in real exports.
var headerRules = []headerRule{
	{
		// "Word", "expression", "Lemma" etc. as the sole label.
		name: "known-label",
		match: func(rc rowContext) bool {
			_, ok := headerLabels[strings.ToLower(rc.first)]
			return ok
		},
	},
	{
		// Latin first cell containing a header-ish fragment, e.g.
		// "Morph-Lemma" or "word (dict form)".
		name: "label-fragment",
		match: func(rc rowContext) bool {
			lc := strings.ToLower(rc.first)
			if !textnorm.HasLatin(lc) {
				return false
			}
			for _, hint := range headerHints {
				if strings.Contains(lc, hint) {
					return true
				}
			}
			return false
		},
	},
	{
		// An all-Latin row with multiple descriptive columns, e.g.
		// "Item,Count,Notes".
		name: "latin-multi-column",
		match: func(rc rowContext) bool {
			if len(rc.rest) == 0 {
				return false
			}
			rest := textnorm.Surface(strings.Join(rc.rest, " "))
			return textnorm.HasLatin(rc.first) && !textnorm.HasJapanese(rc.first) &&
				textnorm.HasLatin(rest) && !textnorm.HasJapanese(rest)
		},
	},
	{
		// A lone Latin label immediately preceding Japanese data.
		name: "latin-before-japanese",
		match: func(rc rowContext) bool {
			return textnorm.HasLatin(rc.first) && !textnorm.HasJapanese(rc.first) &&
				rc.nextFirst != "" && textnorm.HasJapanese(rc.nextFirst)
		},
	},
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return textnorm.Surface(row[0])
}

func nextNonEmptyFirst(rows [][]string, start int) string {
	for _, row := range rows[start:] {
		if cell := firstCell(row); cell != "" {
			return cell
		}
	}
	return ""
}

// isHeaderRow decides whether rows[idx] is a header/metadata row. Blank first
// cells are never headers; they are skipped later as blank data rows.
func isHeaderRow(rows [][]string, idx int) bool {
	first := firstCell(rows[idx])
	if first == "" {
		return false
	}
	rc := rowContext{first: first, nextFirst: nextNonEmptyFirst(rows, idx+1)}
	if len(rows[idx]) > 1 {
		rc.rest = rows[idx][1:]
	}
	for _, rule := range headerRules {
		if rule.match(rc) {
			return true
		}
	}
	return false
}

// Surfaces applies header classification to the leading rows and returns the
// normalized first-column surfaces of everything after, in row order.
//
// Classification runs on consecutive rows from the top and stops at the first
// data row; rows past that point are never reclassified as header, so in-band
// Latin data cannot be mistaken for metadata.
func Surfaces(rows [][]string) []string {
	start := 0
	for start < len(rows) && isHeaderRow(rows, start) {
		start++
	}

	var surfaces []string
	for _, row := range rows[start:] {
		if s := firstCell(row); s != "" {
			surfaces = append(surfaces, s)
		}
	}
	return surfaces
}
