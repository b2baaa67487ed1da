package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// ApprovePost transition a pending post to approved. Admin only.
func (s *Blog) ApprovePost(ctx context.Context,
	actor *model.User, id string) (*model.Post, error) {
	return s.transition(ctx, actor, id, model.PostStatusApproved)
}

// RejectPost transition a pending post to rejected. Admin only.
func (s *Blog) RejectPost(ctx context.Context,
	actor *model.User, id string) (*model.Post, error) {
	return s.transition(ctx, actor, id, model.PostStatusRejected)
}

// transition the moderation state machine: only pending posts move,
// and only an admin moves them. Leaving approved/rejected happens
// solely through UpdatePost's reset to pending.
func (s *Blog) transition(ctx context.Context,
	actor *model.User, id string, target model.PostStatus) (*model.Post, error) {
	if err := Authorize(actor, ActionReviewPost, nil); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.dao.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if p.Status != model.PostStatusPending {
		return nil, errors.Wrapf(model.ErrInvalidTransition,
			"post `%s` is %s, not pending", p.ID, p.Status)
	}

	p.Status = target
	p.ModifiedAt = gutils.Clock.GetUTCNow()
	if err = s.dao.ReplacePost(ctx, p); err != nil {
		return nil, errors.Wrap(err, "replace post")
	}

	s.logger.Info("moderated post",
		zap.String("post", p.Slug),
		zap.String("status", string(target)),
		zap.String("admin", actor.ID))
	return p, nil
}
