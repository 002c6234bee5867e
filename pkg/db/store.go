package db

import (
	"fmt"
	"strings"
)

// CreateOrGetLexeme returns the id of the lexeme for the given normalized
// surface, inserting it if absent.
func CreateOrGetLexeme(conn DBExecutor, surface string) (int64, error) {
	trimmed := strings.TrimSpace(surface)
	if trimmed == "" {
		return 0, fmt.Errorf("surface must be non-empty")
	}

	var id int64
	query := `INSERT INTO lexemes (normalized_surface) VALUES (?)
			  ON CONFLICT(normalized_surface) DO UPDATE SET normalized_surface = excluded.normalized_surface
			  RETURNING id`
	if err := conn.QueryRow(query, trimmed).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert lexeme %s: %w", trimmed, err)
	}
	return id, nil
}

// CreateOrGetLemma returns the id of the lemma row, inserting it if absent.
func CreateOrGetLemma(conn DBExecutor, lemma string) (int64, error) {
	trimmed := strings.TrimSpace(lemma)
	if trimmed == "" {
		return 0, fmt.Errorf("lemma must be non-empty")
	}

	var id int64
	query := `INSERT INTO lemmas (lemma) VALUES (?)
			  ON CONFLICT(lemma) DO UPDATE SET lemma = excluded.lemma
			  RETURNING id`
	if err := conn.QueryRow(query, trimmed).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert lemma %s: %w", trimmed, err)
	}
	return id, nil
}

// LinkLexemeLemma records the association between a lexeme and a lemma.
// Linking the same pair twice is a no-op. The schema allows a lexeme to map
// to more than one lemma; readers must treat the association as a general
// many-to-many join.
func LinkLexemeLemma(conn DBExecutor, lexemeID, lemmaID int64) error {
	if lexemeID <= 0 {
		return fmt.Errorf("lexemeID must be positive")
	}
	if lemmaID <= 0 {
		return fmt.Errorf("lemmaID must be positive")
	}
	_, err := conn.Exec(
		`INSERT OR IGNORE INTO lexeme_lemmas (lexeme_id, lemma_id) VALUES (?, ?)`,
		lexemeID, lemmaID,
	)
	return err
}
