package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradinghub/blog-api/internal/web/blog/dao"
	"github.com/tradinghub/blog-api/internal/web/blog/dto"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
	"github.com/tradinghub/blog-api/library/db/sqlite"
	"github.com/tradinghub/blog-api/library/log"
)

// newTestService fresh service over a transient database so tests
// stay isolated from each other
func newTestService(ctx context.Context, t *testing.T) *Blog {
	t.Helper()

	db, err := sqlite.Open(ctx, sqlite.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	d, err := dao.New(ctx, log.Logger, db)
	require.NoError(t, err)

	svc, err := New(ctx, log.Logger, d)
	require.NoError(t, err)
	return svc
}

func testAuthor(ctx context.Context, t *testing.T, svc *Blog) *model.User {
	t.Helper()
	u, err := svc.GetUserByID(ctx, "user_123")
	require.NoError(t, err)
	return u
}

func testAdmin(ctx context.Context, t *testing.T, svc *Blog) *model.User {
	t.Helper()
	u, err := svc.GetUserByID(ctx, "user_456")
	require.NoError(t, err)
	return u
}

func testReader(ctx context.Context, t *testing.T, svc *Blog) *model.User {
	t.Helper()
	u, err := svc.GetUserByID(ctx, "user_789")
	require.NoError(t, err)
	return u
}

func testDraft() *dto.PostDraft {
	return &dto.PostDraft{
		Title:    "Day Trading",
		Excerpt:  "A short introduction to day trading.",
		Category: "trading strategies",
		Content:  "# Day Trading\n\nBuy low, sell high.",
	}
}

func TestNew_SeedsRoster(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(ctx, t)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	admin := testAdmin(ctx, t, svc)
	require.True(t, admin.IsAdmin())
	require.Equal(t, model.RoleReader, testReader(ctx, t, svc).Role)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(ctx, t)

	u, err := svc.Login(ctx, "  John_Trader ")
	require.NoError(t, err)
	require.Equal(t, "user_123", u.ID)

	_, err = svc.Login(ctx, "nobody")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Login(ctx, "")
	require.ErrorIs(t, err, model.ErrValidation)
}
