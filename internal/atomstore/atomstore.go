// Package atomstore mirrors an Atom's value into a SQLite table holding
// one row per atom name, giving a REPL session a way to keep named values
// durable across restarts. Only the "sqlite"-tagged build of package core
// imports it; the core language itself has no persistence requirement.
package atomstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite-backed table with one row per atom name.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("atomstore: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS atoms (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("atomstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the persisted textual value for name, and whether a row
// existed.
func (s *Store) Load(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM atoms WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("atomstore: load %s: %w", name, err)
	}
	return value, true, nil
}

// Save upserts name's textual value.
func (s *Store) Save(name, value string) error {
	_, err := s.db.Exec(`
INSERT INTO atoms (name, value) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	if err != nil {
		return fmt.Errorf("atomstore: save %s: %w", name, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
