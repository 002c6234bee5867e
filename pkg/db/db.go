// Package db provides SQLite access for both vocabulary stores: the words
// database owned by tokei and the AnkiMorphs database owned by Anki.
//
// The AnkiMorphs database is opened strictly read-only; Anki may be writing
// it concurrently, and tolerating transient schema gaps replaces any form of
// coordination.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ErrStoreMissing indicates the store file does not exist. Callers report the
// store as skipped and continue.
var ErrStoreMissing = errors.New("store file does not exist")

// DBExecutor allows methods to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// OpenWords opens (creating if needed) the tokei words database read-write
// and applies migrations. Used only by the sync pipeline.
func OpenWords(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open words db: %w", err)
	}
	if err := InitWordsDB(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate words db: %w", err)
	}
	return conn, nil
}

// OpenReadOnly opens an existing SQLite database in read-only mode. A missing
// file yields ErrStoreMissing.
func OpenReadOnly(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStoreMissing
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s read-only: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open %s read-only: %w", path, err)
	}
	return &Store{db: conn}, nil
}
