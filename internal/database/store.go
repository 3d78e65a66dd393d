// Package database provides the sqlx-backed row stores for prompt templates,
// processed-email outcomes, and saved drafts.
package database

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNoDatabase is returned by store methods when no connection is configured.
// The resolver and the processing orchestrator degrade on it instead of
// failing the request.
var ErrNoDatabase = errors.New("database connection not available")

// Store bundles the typed queries over one database handle. Queries are
// written with ? placeholders and rebound per driver, so the same store works
// against SQLite, PostgreSQL and MySQL.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a store over the given handle. A nil handle yields a store
// whose Ready reports false; callers degrade instead of panicking.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Ready reports whether a database connection is available
func (s *Store) Ready() bool {
	return s.db != nil
}

// insertReturningID runs an INSERT and reports the new row id. PostgreSQL has
// no LastInsertId, so the query grows a RETURNING clause there.
func (s *Store) insertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if s.db.DriverName() == driverPostgres {
		var id int64
		err := s.db.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
