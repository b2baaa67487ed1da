// Package sqlite opens sqlite databases.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/Laisky/errors/v2"
	_ "github.com/mattn/go-sqlite3"
)

// InMemory dsn for a transient in-process database
const InMemory = ":memory:"

// Open open a sqlite database at dsn
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("dsn is empty")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite `%s`", dsn)
	}

	// sqlite allows a single writer; a lone connection also keeps
	// an in-memory database from vanishing between pool connections
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}

	return db, nil
}
