package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

func TestSuggester_DeliversAfterQuietPeriod(t *testing.T) {
	ctx := context.Background()

	queries := make(chan string, 1)
	sg := NewSuggester(10*time.Millisecond, func(ctx context.Context,
		query string) ([]*model.Post, error) {
		queries <- query
		return []*model.Post{{Title: query}}, nil
	})
	defer sg.Stop()

	delivered := make(chan []*model.Post, 1)
	sg.OnQuery(ctx, "rsi", func(results []*model.Post, err error) {
		require.NoError(t, err)
		delivered <- results
	})

	select {
	case results := <-delivered:
		require.Len(t, results, 1)
		require.Equal(t, "rsi", results[0].Title)
	case <-time.After(time.Second):
		t.Fatal("suggestion never delivered")
	}
	require.Equal(t, "rsi", <-queries)
}

func TestSuggester_NewQuerySupersedesPending(t *testing.T) {
	ctx := context.Background()

	sg := NewSuggester(50*time.Millisecond, func(ctx context.Context,
		query string) ([]*model.Post, error) {
		return nil, nil
	})
	defer sg.Stop()

	delivered := make(chan string, 2)
	deliver := func(query string) func([]*model.Post, error) {
		return func([]*model.Post, error) { delivered <- query }
	}

	// each keystroke within the quiet period replaces the last
	sg.OnQuery(ctx, "r", deliver("r"))
	sg.OnQuery(ctx, "rs", deliver("rs"))
	sg.OnQuery(ctx, "rsi", deliver("rsi"))

	select {
	case got := <-delivered:
		require.Equal(t, "rsi", got)
	case <-time.After(time.Second):
		t.Fatal("suggestion never delivered")
	}

	// the superseded queries must stay silent
	select {
	case got := <-delivered:
		t.Fatalf("stale delivery for %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSuggester_Stop(t *testing.T) {
	ctx := context.Background()

	sg := NewSuggester(20*time.Millisecond, func(ctx context.Context,
		query string) ([]*model.Post, error) {
		return nil, nil
	})

	delivered := make(chan struct{}, 1)
	sg.OnQuery(ctx, "rsi", func([]*model.Post, error) {
		delivered <- struct{}{}
	})
	sg.Stop()

	select {
	case <-delivered:
		t.Fatal("delivery after stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSuggester_DefaultDelay(t *testing.T) {
	sg := NewSuggester(0, func(ctx context.Context,
		query string) ([]*model.Post, error) {
		return nil, nil
	})
	defer sg.Stop()

	require.Equal(t, defaultSuggestDebounce, sg.delay)
}
