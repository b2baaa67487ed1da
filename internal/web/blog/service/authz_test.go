package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	author := &model.User{ID: "u1", Role: model.RoleAuthor}
	admin := &model.User{ID: "u2", Role: model.RoleAdmin}
	reader := &model.User{ID: "u3", Role: model.RoleReader}
	ownPost := &model.Post{ID: "p1", AuthorID: author.ID}
	otherPost := &model.Post{ID: "p2", AuthorID: admin.ID}

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		for _, action := range []Action{ActionCreatePost, ActionEditPost,
			ActionDeletePost, ActionReviewPost, ActionBookmark} {
			require.ErrorIs(t, Authorize(nil, action, nil),
				model.ErrPermissionDenied, "action %s", action)
		}
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Authorize(author, ActionCreatePost, nil))
		require.NoError(t, Authorize(admin, ActionCreatePost, nil))
		require.ErrorIs(t, Authorize(reader, ActionCreatePost, nil),
			model.ErrPermissionDenied)
	})

	t.Run("edit and delete are ownership scoped", func(t *testing.T) {
		t.Parallel()
		for _, action := range []Action{ActionEditPost, ActionDeletePost} {
			require.NoError(t, Authorize(author, action, ownPost))
			require.ErrorIs(t, Authorize(author, action, otherPost),
				model.ErrPermissionDenied)
			// admin role grants review, not ownership over others' posts
			require.ErrorIs(t, Authorize(admin, action, ownPost),
				model.ErrPermissionDenied)
			require.ErrorIs(t, Authorize(reader, action, ownPost),
				model.ErrPermissionDenied)
			require.ErrorIs(t, Authorize(author, action, nil),
				model.ErrPermissionDenied)
		}
	})

	t.Run("review", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Authorize(admin, ActionReviewPost, nil))
		require.ErrorIs(t, Authorize(author, ActionReviewPost, nil),
			model.ErrPermissionDenied)
		require.ErrorIs(t, Authorize(reader, ActionReviewPost, nil),
			model.ErrPermissionDenied)
	})

	t.Run("bookmark", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Authorize(reader, ActionBookmark, nil))
		require.NoError(t, Authorize(author, ActionBookmark, nil))
		require.NoError(t, Authorize(admin, ActionBookmark, nil))
	})
}
