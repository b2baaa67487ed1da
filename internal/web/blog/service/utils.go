package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

var slugInvalidRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derive a url slug from a post title: lower case, runs of
// non-alphanumerics collapsed to a single dash.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidRunes.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "post"
	}

	return slug
}

// wordsPerMinute reading speed behind the reading time display string
const wordsPerMinute = 200

// ReadingTime derive the display string like "5 MIN READ" from the
// markdown word count, never below one minute.
func ReadingTime(md string) string {
	words := len(strings.Fields(md))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return strconv.Itoa(minutes) + " MIN READ"
}

// ParseMarkdown2HTML parse markdown to string
func ParseMarkdown2HTML(md []byte) string {
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return string(markdown.ToHTML(md, nil, renderer))
}

// normalizeCategory upper-case display form, as the original data stores it
func normalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}
