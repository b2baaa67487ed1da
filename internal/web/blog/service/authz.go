package service

import (
	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// Action a mutation guarded by the authorization policy
type Action string

const (
	// ActionCreatePost create a new post
	ActionCreatePost Action = "post:create"
	// ActionEditPost edit an existing post's fields
	ActionEditPost Action = "post:edit"
	// ActionDeletePost delete a post
	ActionDeletePost Action = "post:delete"
	// ActionReviewPost approve/reject and read the pending queue
	ActionReviewPost Action = "post:review"
	// ActionBookmark mutate or read the actor's own bookmarks
	ActionBookmark Action = "bookmark"
)

// Authorize the single policy gate every entry point goes through.
// post is required for ownership-scoped actions and ignored otherwise.
func Authorize(actor *model.User, action Action, post *model.Post) error {
	if actor == nil {
		return errors.Wrapf(model.ErrPermissionDenied, "anonymous actor cannot %s", action)
	}

	switch action {
	case ActionCreatePost:
		if actor.CanWrite() {
			return nil
		}
	case ActionEditPost, ActionDeletePost:
		if actor.CanWrite() && post != nil && post.AuthorID == actor.ID {
			return nil
		}
	case ActionReviewPost:
		if actor.IsAdmin() {
			return nil
		}
	case ActionBookmark:
		// any authenticated actor
		return nil
	}

	return errors.Wrapf(model.ErrPermissionDenied,
		"actor `%s` with role `%s` cannot %s", actor.ID, actor.Role, action)
}
