package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

func TestSeedDemoPosts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(ctx, t)

	require.NoError(t, svc.SeedDemoPosts(ctx))

	approved, err := svc.ListApprovedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 7)

	pending, err := svc.ListPendingPosts(ctx, testAdmin(ctx, t, svc))
	require.NoError(t, err)
	require.Len(t, pending, 2)

	p, err := svc.GetPostBySlug(ctx, "day-trading-strategies")
	require.NoError(t, err)
	require.Equal(t, "post_1", p.ID)
	require.Equal(t, model.PostStatusApproved, p.Status)
	require.Equal(t, "user_123", p.AuthorID)
	require.Equal(t, "TRADING STRATEGIES", p.Category)
	require.False(t, p.CreatedAt.IsZero())

	// running the seed twice must not duplicate anything
	require.NoError(t, svc.SeedDemoPosts(ctx))
	approved, err = svc.ListApprovedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 7)
}
