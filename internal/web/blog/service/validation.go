package service

import (
	"strings"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"

	"github.com/tradinghub/blog-api/internal/web/blog/dto"
	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

const (
	// maxPostTitleLength caps the length of post titles.
	maxPostTitleLength = 200
	// maxPostExcerptLength caps the length of post excerpts.
	maxPostExcerptLength = 500
	// maxPostContentLength caps the length of post content.
	maxPostContentLength = 100000
	// maxPostCategoryLength caps the length of post categories.
	maxPostCategoryLength = 100
	// maxCoverImageLength caps the length of cover image URLs.
	maxCoverImageLength = 2048
	// maxSearchQueryLength caps the length of search queries.
	maxSearchQueryLength = 200
	// maxAuthorFilterLength caps the length of author name filters.
	maxAuthorFilterLength = 128
)

// sanitizeOptionalText trims input, checks for null bytes, enforces maxLen
// runes, and returns the sanitized value.
func sanitizeOptionalText(input string, maxLen int, field string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}
	if strings.ContainsRune(trimmed, '\x00') {
		return "", errors.Wrapf(model.ErrValidation, "%s contains invalid null byte", field)
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", errors.Wrapf(model.ErrValidation, "%s exceeds max length %d", field, maxLen)
	}
	return trimmed, nil
}

// sanitizeRequiredText trims input, enforces maxLen runes, and returns the
// sanitized value or an error.
func sanitizeRequiredText(input string, maxLen int, field string) (string, error) {
	trimmed, err := sanitizeOptionalText(input, maxLen, field)
	if err != nil {
		return "", err
	}
	if trimmed == "" {
		return "", errors.Wrapf(model.ErrValidation, "%s is required", field)
	}
	return trimmed, nil
}

// sanitizeDraft validates a create draft and returns a sanitized copy.
// Required fields are checked before any mutation occurs.
func sanitizeDraft(draft *dto.PostDraft) (*dto.PostDraft, error) {
	if draft == nil {
		return nil, errors.Wrap(model.ErrValidation, "draft is nil")
	}

	title, err := sanitizeRequiredText(draft.Title, maxPostTitleLength, "title")
	if err != nil {
		return nil, err
	}
	excerpt, err := sanitizeRequiredText(draft.Excerpt, maxPostExcerptLength, "excerpt")
	if err != nil {
		return nil, err
	}
	content, err := sanitizeRequiredText(draft.Content, maxPostContentLength, "content")
	if err != nil {
		return nil, err
	}
	category, err := sanitizeOptionalText(draft.Category, maxPostCategoryLength, "category")
	if err != nil {
		return nil, err
	}
	cover, err := sanitizeOptionalText(draft.CoverImage, maxCoverImageLength, "cover image")
	if err != nil {
		return nil, err
	}

	return &dto.PostDraft{
		Title:      title,
		Excerpt:    excerpt,
		Category:   normalizeCategory(category),
		Content:    content,
		CoverImage: cover,
	}, nil
}

// sanitizePatch validates a partial update and returns a sanitized copy.
// All fields are optional; provided fields must still be well-formed.
func sanitizePatch(patch *dto.PostPatch) (*dto.PostPatch, error) {
	if patch == nil {
		return nil, errors.Wrap(model.ErrValidation, "patch is nil")
	}

	title, err := sanitizeOptionalText(patch.Title, maxPostTitleLength, "title")
	if err != nil {
		return nil, err
	}
	excerpt, err := sanitizeOptionalText(patch.Excerpt, maxPostExcerptLength, "excerpt")
	if err != nil {
		return nil, err
	}
	content, err := sanitizeOptionalText(patch.Content, maxPostContentLength, "content")
	if err != nil {
		return nil, err
	}
	category, err := sanitizeOptionalText(patch.Category, maxPostCategoryLength, "category")
	if err != nil {
		return nil, err
	}
	cover, err := sanitizeOptionalText(patch.CoverImage, maxCoverImageLength, "cover image")
	if err != nil {
		return nil, err
	}

	return &dto.PostPatch{
		Title:      title,
		Excerpt:    excerpt,
		Category:   normalizeCategory(category),
		Content:    content,
		CoverImage: cover,
	}, nil
}

// sanitizeSearchCfg validates a search config and returns a sanitized copy.
func sanitizeSearchCfg(cfg *dto.SearchCfg) (*dto.SearchCfg, error) {
	if cfg == nil {
		return &dto.SearchCfg{}, nil
	}

	query, err := sanitizeOptionalText(cfg.Query, maxSearchQueryLength, "query")
	if err != nil {
		return nil, err
	}
	author, err := sanitizeOptionalText(cfg.AuthorName, maxAuthorFilterLength, "author filter")
	if err != nil {
		return nil, err
	}

	return &dto.SearchCfg{Query: query, AuthorName: author}, nil
}
