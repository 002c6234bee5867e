package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Store is a read-only accessor over one SQLite database. All query entry
// points reject statements that are not reads; combined with the read-only
// open mode this keeps the accessor contract non-mutating even against a
// database another process is writing.
type Store struct {
	db *sql.DB
}

// NewStore wraps an already-open connection. Intended for tests and for
// querying the words database the sync pipeline just wrote.
func NewStore(conn *sql.DB) *Store {
	return &Store{db: conn}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// readOnlyStatement reports whether the query is a plain read.
func readOnlyStatement(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "SELECT") || strings.HasPrefix(q, "PRAGMA") ||
		strings.HasPrefix(q, "WITH")
}

// Query executes a parameterized read statement. Anything other than a
// SELECT/WITH/PRAGMA is rejected.
func (s *Store) Query(query string, args ...interface{}) (*sql.Rows, error) {
	if !readOnlyStatement(query) {
		return nil, fmt.Errorf("refusing non-read statement: %.40q", query)
	}
	return s.db.Query(query, args...)
}

// QueryInt executes a read statement expected to yield a single integer,
// such as a COUNT. A NULL result scans as 0.
func (s *Store) QueryInt(query string, args ...interface{}) (int, error) {
	if !readOnlyStatement(query) {
		return 0, fmt.Errorf("refusing non-read statement: %.40q", query)
	}
	var n sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return int(n.Int64), nil
}

// TableExists reports whether the named table is present.
func (s *Store) TableExists(name string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM sqlite_master WHERE type='table' AND name=? LIMIT 1", name,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ColumnExists reports whether the table has the named column. Callers probe
// optional columns before filtering on them and fall back to an unfiltered
// query when absent.
func (s *Store) ColumnExists(table, column string) (bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid, notnull, pk int
			name, ctype      string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// CountRows returns the number of rows in the table.
func (s *Store) CountRows(table string) (int, error) {
	return s.QueryInt(fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
}

// CountDistinct returns the number of distinct values in table.column,
// 0 for an empty table.
func (s *Store) CountDistinct(table, column string) (int, error) {
	return s.QueryInt(fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM %s", column, table))
}
