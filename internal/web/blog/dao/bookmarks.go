package dao

import (
	"context"

	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// AddBookmark store a bookmark; no-op when the (user, post) pair
// already exists
func (d *Blog) AddBookmark(ctx context.Context, b *model.Bookmark) error {
	stmt := `INSERT INTO bookmarks (user_id, post_id, slug, title, date, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT(user_id, post_id) DO NOTHING`
	if _, err := d.db.ExecContext(ctx, stmt,
		b.UserID, b.PostID, b.Slug, b.Title, b.Date, b.CreatedAt); err != nil {
		return errors.Wrapf(err, "insert bookmark `%s/%s`", b.UserID, b.PostID)
	}

	return nil
}

// RemoveBookmark delete a bookmark; no-op when absent
func (d *Blog) RemoveBookmark(ctx context.Context, userID, postID string) error {
	stmt := `DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`
	if _, err := d.db.ExecContext(ctx, stmt, userID, postID); err != nil {
		return errors.Wrapf(err, "delete bookmark `%s/%s`", userID, postID)
	}

	return nil
}

// IsBookmarked whether the actor bookmarked the post
func (d *Blog) IsBookmarked(ctx context.Context, userID, postID string) (bool, error) {
	var n int
	stmt := `SELECT COUNT(1) FROM bookmarks WHERE user_id = $1 AND post_id = $2`
	if err := d.db.QueryRowContext(ctx, stmt, userID, postID).Scan(&n); err != nil {
		return false, errors.Wrapf(err, "count bookmark `%s/%s`", userID, postID)
	}

	return n != 0, nil
}

// ListBookmarksByUser all bookmarks of one actor, insertion order
func (d *Blog) ListBookmarksByUser(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	stmt := `SELECT user_id, post_id, slug, title, date, created_at
FROM bookmarks WHERE user_id = $1 ORDER BY rowid`
	rows, err := d.db.QueryContext(ctx, stmt, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query bookmarks")
	}
	defer rows.Close() //nolint:errcheck

	bookmarks := []*model.Bookmark{}
	for rows.Next() {
		b := &model.Bookmark{}
		if err = rows.Scan(&b.UserID, &b.PostID, &b.Slug, &b.Title,
			&b.Date, &b.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan bookmark")
		}

		bookmarks = append(bookmarks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iter bookmarks")
	}

	return bookmarks, nil
}
