// Package morph maps observed surface forms to dictionary lemmas using the
// kagome morphological analyzer with the IPA dictionary.
package morph

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Kagome IPA features:
// 0: part of speech, 1-3: sub-POS, 4: conjugation type,
// 5: conjugation form, 6: base form (lemma), 7: reading, 8: pronunciation.
const baseFormFeature = 6

// POS classes that never carry the lemma of a word-list entry.
var skipPOS = map[string]struct{}{
	"記号":  {},
	"助詞":  {},
	"助動詞": {},
}

// Lemmatizer reduces a surface form to its dictionary form.
type Lemmatizer struct {
	t *tokenizer.Tokenizer
}

// NewLemmatizer creates a Lemmatizer backed by the embedded IPA dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Lemmatizer{t: t}, nil
}

// Lemma returns the dictionary form of the given surface. An inflected entry
// like 走った reduces to 走る. When the analyzer yields nothing usable the
// surface itself is returned, so the result is always non-empty for non-empty
// input.
func (l *Lemmatizer) Lemma(surface string) string {
	surface = strings.TrimSpace(surface)
	if surface == "" {
		return ""
	}

	for _, token := range l.t.Tokenize(surface) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > 0 {
			if _, skip := skipPOS[features[0]]; skip {
				continue
			}
		}
		if len(features) > baseFormFeature && features[baseFormFeature] != "*" {
			return features[baseFormFeature]
		}
		return token.Surface
	}
	return surface
}
