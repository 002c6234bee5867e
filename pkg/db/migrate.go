package db

import "strings"

// Words database schema. One lexeme per distinct observed surface, one lemma
// per distinct dictionary form, and a many-to-many association between them.
const wordsMigrationsSQL = `
CREATE TABLE IF NOT EXISTS lexemes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	normalized_surface TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS lemmas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lemma TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS lexeme_lemmas (
	lexeme_id INTEGER NOT NULL REFERENCES lexemes(id),
	lemma_id INTEGER NOT NULL REFERENCES lemmas(id),
	UNIQUE (lexeme_id, lemma_id)
);

CREATE INDEX IF NOT EXISTS idx_lexeme_lemmas_lemma ON lexeme_lemmas (lemma_id)
`

// InitWordsDB applies the words schema to the given connection.
func InitWordsDB(conn DBExecutor) error {
	for _, stmt := range strings.Split(wordsMigrationsSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
