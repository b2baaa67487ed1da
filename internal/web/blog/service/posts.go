package service

import (
	"context"
	"strconv"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/tradinghub/blog-api/internal/web/blog/dto"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// CreatePost insert a new post owned by actor.
//
// Status is always forced to pending regardless of input; the id and
// a unique slug are assigned here.
func (s *Blog) CreatePost(ctx context.Context,
	actor *model.User, draft *dto.PostDraft) (*model.Post, error) {
	if err := Authorize(actor, ActionCreatePost, nil); err != nil {
		return nil, errors.WithStack(err)
	}

	draft, err := sanitizeDraft(draft)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slug, err := s.allocateSlug(ctx, Slugify(draft.Title))
	if err != nil {
		return nil, errors.Wrap(err, "allocate slug")
	}

	ts := gutils.Clock.GetUTCNow()
	p := &model.Post{
		ID:          uuid.NewString(),
		Slug:        slug,
		Title:       draft.Title,
		Excerpt:     draft.Excerpt,
		Category:    draft.Category,
		Content:     draft.Content,
		CoverImage:  draft.CoverImage,
		Date:        ts.Format("2006-01-02"),
		ReadingTime: ReadingTime(draft.Content),
		Status:      model.PostStatusPending,
		AuthorID:    actor.ID,
		CreatedAt:   ts,
		ModifiedAt:  ts,
	}

	if err = s.dao.InsertPost(ctx, p); err != nil {
		return nil, errors.Wrap(err, "insert post")
	}

	s.logger.Info("created post",
		zap.String("post", p.Slug),
		zap.String("author", actor.ID))
	return p, nil
}

// allocateSlug return base when free, otherwise append the first
// free numeric disambiguator. Caller must hold s.mu.
func (s *Blog) allocateSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		exists, err := s.dao.IsSlugExists(ctx, slug)
		if err != nil {
			return "", errors.WithStack(err)
		}
		if !exists {
			return slug, nil
		}

		slug = base + "-" + strconv.Itoa(i)
	}
}

// GetPostBySlug load one post by slug
func (s *Blog) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return s.dao.GetPostBySlug(ctx, slug)
}

// GetPostByID load one post by id
func (s *Blog) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	return s.dao.GetPostByID(ctx, id)
}

// ListApprovedPosts the public, reader-visible set
func (s *Blog) ListApprovedPosts(ctx context.Context) ([]*model.Post, error) {
	return s.dao.ListPostsByStatus(ctx, model.PostStatusApproved)
}

// ListPostsByAuthor all posts of one actor, any status, for the
// author's management view
func (s *Blog) ListPostsByAuthor(ctx context.Context, authorID string) ([]*model.Post, error) {
	return s.dao.ListPostsByAuthor(ctx, authorID)
}

// ListPendingPosts the admin review queue
func (s *Blog) ListPendingPosts(ctx context.Context, actor *model.User) ([]*model.Post, error) {
	if err := Authorize(actor, ActionReviewPost, nil); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.dao.ListPostsByStatus(ctx, model.PostStatusPending)
}

// UpdatePost merge the provided fields into the stored post.
//
// Any edit resets status to pending so the post re-enters review,
// even when it was approved or rejected.
func (s *Blog) UpdatePost(ctx context.Context,
	actor *model.User, id string, patch *dto.PostPatch) (*model.Post, error) {
	patch, err := sanitizePatch(patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.dao.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err = Authorize(actor, ActionEditPost, p); err != nil {
		return nil, errors.WithStack(err)
	}

	if err = copier.CopyWithOption(p, patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errors.Wrap(err, "merge patch")
	}

	p.ReadingTime = ReadingTime(p.Content)
	p.Status = model.PostStatusPending
	p.ModifiedAt = gutils.Clock.GetUTCNow()

	if err = s.dao.ReplacePost(ctx, p); err != nil {
		return nil, errors.Wrap(err, "replace post")
	}

	s.logger.Info("updated post",
		zap.String("post", p.Slug),
		zap.String("actor", actor.ID))
	return p, nil
}

// DeletePost remove a post owned by actor, returns whether a removal
// occurred. A missing post is nothing to do, not an error.
func (s *Blog) DeletePost(ctx context.Context,
	actor *model.User, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.dao.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}

		return false, errors.WithStack(err)
	}

	if err = Authorize(actor, ActionDeletePost, p); err != nil {
		return false, errors.WithStack(err)
	}

	removed, err := s.dao.DeletePost(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "delete post")
	}

	if removed {
		s.logger.Info("deleted post",
			zap.String("post", p.Slug),
			zap.String("actor", actor.ID))
	}
	return removed, nil
}
