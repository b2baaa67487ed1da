package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// AddBookmark save a reference to the post for actor, capturing the
// slug/title/date snapshot at bookmark time. Idempotent.
func (s *Blog) AddBookmark(ctx context.Context,
	actor *model.User, postID string) (*model.Bookmark, error) {
	if err := Authorize(actor, ActionBookmark, nil); err != nil {
		return nil, errors.WithStack(err)
	}

	p, err := s.dao.GetPostByID(ctx, postID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b := &model.Bookmark{
		UserID:    actor.ID,
		PostID:    p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Date:      p.Date,
		CreatedAt: gutils.Clock.GetUTCNow(),
	}
	if err = s.dao.AddBookmark(ctx, b); err != nil {
		return nil, errors.Wrap(err, "add bookmark")
	}

	return b, nil
}

// RemoveBookmark drop the actor's bookmark for the post. Removing an
// absent bookmark is a no-op.
func (s *Blog) RemoveBookmark(ctx context.Context,
	actor *model.User, postID string) error {
	if err := Authorize(actor, ActionBookmark, nil); err != nil {
		return errors.WithStack(err)
	}

	return s.dao.RemoveBookmark(ctx, actor.ID, postID)
}

// IsBookmarked whether the actor bookmarked the post
func (s *Blog) IsBookmarked(ctx context.Context,
	actor *model.User, postID string) (bool, error) {
	if err := Authorize(actor, ActionBookmark, nil); err != nil {
		return false, errors.WithStack(err)
	}

	return s.dao.IsBookmarked(ctx, actor.ID, postID)
}

// ListBookmarks all bookmarks of the actor. Snapshots are served as
// stored; a deleted post's bookmark keeps its stale snapshot.
func (s *Blog) ListBookmarks(ctx context.Context,
	actor *model.User) ([]*model.Bookmark, error) {
	if err := Authorize(actor, ActionBookmark, nil); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.dao.ListBookmarksByUser(ctx, actor.ID)
}
