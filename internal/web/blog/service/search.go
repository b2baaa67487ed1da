package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/dto"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// maxSuggestions caps the incremental-typing suggestion variant
const maxSuggestions = 5

// SearchPosts filter the approved corpus: case-insensitive substring
// match on title OR excerpt OR content, AND the optional author
// display-name filter. An empty config returns the corpus unchanged;
// result order equals corpus order.
func (s *Blog) SearchPosts(ctx context.Context,
	cfg *dto.SearchCfg) ([]*model.Post, error) {
	cfg, err := sanitizeSearchCfg(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	corpus, err := s.ListApprovedPosts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load corpus")
	}

	return s.filterPosts(ctx, corpus, cfg)
}

// SuggestPosts the same predicate as SearchPosts capped to the first
// maxSuggestions matches
func (s *Blog) SuggestPosts(ctx context.Context, query string) ([]*model.Post, error) {
	results, err := s.SearchPosts(ctx, &dto.SearchCfg{Query: query})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results, nil
}

func (s *Blog) filterPosts(ctx context.Context,
	corpus []*model.Post, cfg *dto.SearchCfg) ([]*model.Post, error) {
	if cfg.Query == "" && cfg.AuthorName == "" {
		// identity filter
		return corpus, nil
	}

	var authorNames map[string]string
	if cfg.AuthorName != "" {
		users, err := s.dao.ListUsers(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load users")
		}

		authorNames = make(map[string]string, len(users))
		for _, u := range users {
			authorNames[u.ID] = strings.ToLower(u.Name)
		}
	}

	query := strings.ToLower(cfg.Query)
	authorFilter := strings.ToLower(cfg.AuthorName)

	results := []*model.Post{}
	for _, p := range corpus {
		if query != "" && !matchPost(p, query) {
			continue
		}
		if authorFilter != "" &&
			!strings.Contains(authorNames[p.AuthorID], authorFilter) {
			continue
		}

		results = append(results, p)
	}

	return results, nil
}

// matchPost case-insensitive substring match on title, excerpt or
// content; query must already be lower case
func matchPost(p *model.Post, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) ||
		strings.Contains(strings.ToLower(p.Content), query)
}
