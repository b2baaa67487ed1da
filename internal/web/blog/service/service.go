// Package service is the service layer of blog.
package service

import (
	"context"
	"sync"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"

	"github.com/tradinghub/blog-api/internal/web/blog/dao"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// Blog blog service
type Blog struct {
	logger glog.Logger
	dao    *dao.Blog

	// serializes post mutations so concurrent editors cannot race
	// on slug allocation or read-modify-write updates
	mu sync.Mutex
}

// New new blog service
func New(ctx context.Context,
	logger glog.Logger,
	dao *dao.Blog) (*Blog, error) {
	b := &Blog{
		logger: logger,
		dao:    dao,
	}

	if err := b.setupRoster(ctx); err != nil {
		return nil, errors.Wrap(err, "setup roster")
	}

	return b, nil
}

// defaultRoster the fixed set of actors; identity provisioning is
// out of scope, these are the only selectable identities.
var defaultRoster = []*model.User{
	{
		ID:       "user_123",
		Name:     "John Trader",
		Username: "john_trader",
		Role:     model.RoleAuthor,
		Avatar:   "/placeholder.svg?height=40&width=40",
	},
	{
		ID:       "user_456",
		Name:     "Admin User",
		Username: "admin",
		Role:     model.RoleAdmin,
		Avatar:   "/placeholder.svg?height=40&width=40",
	},
	{
		ID:       "user_789",
		Name:     "Regular Reader",
		Username: "reader",
		Role:     model.RoleReader,
		Avatar:   "/placeholder.svg?height=40&width=40",
	},
}

func (s *Blog) setupRoster(ctx context.Context) error {
	for _, u := range defaultRoster {
		if err := s.dao.UpsertUser(ctx, u); err != nil {
			return errors.Wrapf(err, "upsert user `%s`", u.Username)
		}
	}

	return nil
}
