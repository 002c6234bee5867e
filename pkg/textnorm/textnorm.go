// Package textnorm canonicalizes raw word tokens into comparable surface forms.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Surface canonicalizes a raw token: trims surrounding whitespace, applies
// Unicode NFC, and collapses internal whitespace runs to a single ASCII space.
// An empty result means "no surface" and must be skipped by callers.
func Surface(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// HasJapanese reports whether s contains at least one kana or kanji rune.
// Ranges: hiragana/katakana U+3040..U+30FF, CJK extension A + unified
// ideographs U+3400..U+9FFF.
func HasJapanese(s string) bool {
	for _, r := range s {
		if (r >= 0x3040 && r <= 0x30ff) || (r >= 0x3400 && r <= 0x9fff) {
			return true
		}
	}
	return false
}

// HasLatin reports whether s contains at least one ASCII letter.
func HasLatin(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
