package dao

import (
	"context"
	"database/sql"

	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

const postColumns = `id, slug, title, excerpt, category, content,
  cover_image, date, reading_time, status, author_id, created_at, modified_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	p := &model.Post{}
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Category,
		&p.Content, &p.CoverImage, &p.Date, &p.ReadingTime, &p.Status,
		&p.AuthorID, &p.CreatedAt, &p.ModifiedAt); err != nil {
		return nil, errors.Wrap(err, "scan post")
	}

	return p, nil
}

// InsertPost store a new post
func (d *Blog) InsertPost(ctx context.Context, p *model.Post) error {
	stmt := `INSERT INTO posts (` + postColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err := d.db.ExecContext(ctx, stmt,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Category, p.Content,
		p.CoverImage, p.Date, p.ReadingTime, p.Status, p.AuthorID,
		p.CreatedAt, p.ModifiedAt); err != nil {
		return errors.Wrapf(err, "insert post `%s`", p.ID)
	}

	return nil
}

// GetPostByID load one post by id
func (d *Blog) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	stmt := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 LIMIT 1`
	p, err := scanPost(d.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(model.ErrNotFound, "post `%s`", id)
		}

		return nil, errors.Wrapf(err, "get post `%s`", id)
	}

	return p, nil
}

// GetPostBySlug load one post by slug
func (d *Blog) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	stmt := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1 LIMIT 1`
	p, err := scanPost(d.db.QueryRowContext(ctx, stmt, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(model.ErrNotFound, "post `%s`", slug)
		}

		return nil, errors.Wrapf(err, "get post by slug `%s`", slug)
	}

	return p, nil
}

func (d *Blog) queryPosts(ctx context.Context, stmt string, args ...any) ([]*model.Post, error) {
	rows, err := d.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query posts")
	}
	defer rows.Close() //nolint:errcheck

	posts := []*model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iter posts")
	}

	return posts, nil
}

// ListPostsByStatus all posts with the given status, insertion order
func (d *Blog) ListPostsByStatus(ctx context.Context, status model.PostStatus) ([]*model.Post, error) {
	stmt := `SELECT ` + postColumns + ` FROM posts WHERE status = $1 ORDER BY rowid`
	return d.queryPosts(ctx, stmt, status)
}

// ListPostsByAuthor all posts owned by the actor, any status, insertion order
func (d *Blog) ListPostsByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	stmt := `SELECT ` + postColumns + ` FROM posts WHERE author_id = $1 ORDER BY rowid`
	return d.queryPosts(ctx, stmt, authorID)
}

// ListPosts the full corpus, insertion order
func (d *Blog) ListPosts(ctx context.Context) ([]*model.Post, error) {
	stmt := `SELECT ` + postColumns + ` FROM posts ORDER BY rowid`
	return d.queryPosts(ctx, stmt)
}

// ReplacePost overwrite the stored post with p, matched by id
func (d *Blog) ReplacePost(ctx context.Context, p *model.Post) error {
	stmt := `UPDATE posts SET slug = ?2, title = ?3, excerpt = ?4, category = ?5,
  content = ?6, cover_image = ?7, date = ?8, reading_time = ?9, status = ?10,
  author_id = ?11, created_at = ?12, modified_at = ?13
WHERE id = ?1`
	result, err := d.db.ExecContext(ctx, stmt,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Category, p.Content,
		p.CoverImage, p.Date, p.ReadingTime, p.Status, p.AuthorID,
		p.CreatedAt, p.ModifiedAt)
	if err != nil {
		return errors.Wrapf(err, "update post `%s`", p.ID)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return errors.Wrapf(model.ErrNotFound, "post `%s`", p.ID)
	}

	return nil
}

// DeletePost remove a post, returns whether a removal occurred
func (d *Blog) DeletePost(ctx context.Context, id string) (bool, error) {
	result, err := d.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, errors.Wrapf(err, "delete post `%s`", id)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}

	return n > 0, nil
}

// IsSlugExists whether any post already uses slug
func (d *Blog) IsSlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	if err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM posts WHERE slug = $1`, slug).Scan(&n); err != nil {
		return false, errors.Wrapf(err, "count slug `%s`", slug)
	}

	return n != 0, nil
}
