// Package store is the persistence layer. It offers single-record get and
// put operations only; there are no multi-record transactions, so callers
// that write several records in sequence get no atomicity across them.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // The database driver
)

// Store wraps the database handle. Handlers and services receive a *Store
// explicitly; there is no package-level connection.
type Store struct {
	db *sqlx.DB
}

// New wraps an existing database handle. Used directly by tests.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database at dbURL and pings it.
func Open(dbURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
