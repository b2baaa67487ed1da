// Package dao contains all the data access object used in the application.
package dao

import (
	"context"
	"database/sql"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
)

// Blog dao type
type Blog struct {
	logger glog.Logger
	db     *sql.DB
}

// New create new dao and ensure the schema exists
func New(ctx context.Context, logger glog.Logger, db *sql.DB) (*Blog, error) {
	d := &Blog{
		logger: logger,
		db:     db,
	}

	if err := d.setup(ctx); err != nil {
		return nil, errors.Wrap(err, "setup schema")
	}

	return d, nil
}

func (d *Blog) setup(ctx context.Context) error {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS posts (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  excerpt TEXT NOT NULL,
  category TEXT NOT NULL,
  content TEXT NOT NULL,
  cover_image TEXT NOT NULL DEFAULT '',
  date TEXT NOT NULL,
  reading_time TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  author_id TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  modified_at TIMESTAMP NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  username TEXT NOT NULL UNIQUE,
  role TEXT NOT NULL,
  avatar TEXT NOT NULL DEFAULT ''
)`,
		`CREATE TABLE IF NOT EXISTS bookmarks (
  user_id TEXT NOT NULL,
  post_id TEXT NOT NULL,
  slug TEXT NOT NULL,
  title TEXT NOT NULL,
  date TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  PRIMARY KEY (user_id, post_id)
)`,
	} {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create table")
		}
	}

	return nil
}
