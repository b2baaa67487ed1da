package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// Login resolve a roster actor by username. There are no passwords;
// the fixed roster is the whole identity system.
func (s *Blog) Login(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, errors.Wrap(model.ErrValidation, "username is required")
	}

	u, err := s.dao.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "load user `%s`", username)
	}

	s.logger.Debug("user login", zap.String("user", u.Username))
	return u, nil
}

// GetUserByID load one roster actor by id
func (s *Blog) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, errors.Wrap(model.ErrValidation, "id is required")
	}

	return s.dao.GetUserByID(ctx, id)
}

// ListUsers the whole roster
func (s *Blog) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.dao.ListUsers(ctx)
}
