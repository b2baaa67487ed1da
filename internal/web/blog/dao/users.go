package dao

import (
	"context"
	"database/sql"

	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// UpsertUser insert or refresh one roster entry
func (d *Blog) UpsertUser(ctx context.Context, u *model.User) error {
	stmt := `INSERT INTO users (id, name, username, role, avatar)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT(id)
DO UPDATE SET name = EXCLUDED.name, username = EXCLUDED.username,
  role = EXCLUDED.role, avatar = EXCLUDED.avatar`
	if _, err := d.db.ExecContext(ctx, stmt,
		u.ID, u.Name, u.Username, u.Role, u.Avatar); err != nil {
		return errors.Wrapf(err, "upsert user `%s`", u.ID)
	}

	return nil
}

func scanUser(row rowScanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.Avatar); err != nil {
		return nil, errors.Wrap(err, "scan user")
	}

	return u, nil
}

// GetUserByID load one user by id
func (d *Blog) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	stmt := `SELECT id, name, username, role, avatar FROM users WHERE id = $1 LIMIT 1`
	u, err := scanUser(d.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(model.ErrNotFound, "user `%s`", id)
		}

		return nil, errors.Wrapf(err, "get user `%s`", id)
	}

	return u, nil
}

// GetUserByUsername load one user by username
func (d *Blog) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	stmt := `SELECT id, name, username, role, avatar FROM users WHERE username = $1 LIMIT 1`
	u, err := scanUser(d.db.QueryRowContext(ctx, stmt, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(model.ErrNotFound, "user `%s`", username)
		}

		return nil, errors.Wrapf(err, "get user by username `%s`", username)
	}

	return u, nil
}

// ListUsers the whole roster
func (d *Blog) ListUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name, username, role, avatar FROM users ORDER BY rowid`)
	if err != nil {
		return nil, errors.Wrap(err, "query users")
	}
	defer rows.Close() //nolint:errcheck

	users := []*model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iter users")
	}

	return users, nil
}
