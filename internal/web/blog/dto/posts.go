// Package dto request and response shapes shared by service and controller.
package dto

// PostDraft fields supplied when creating a post. Status and author
// are never taken from the draft.
type PostDraft struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
}

// PostPatch partial update for an existing post. Empty fields are
// left untouched.
type PostPatch struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
}

// IsZero whether the patch carries no changes
func (p *PostPatch) IsZero() bool {
	return p.Title == "" && p.Excerpt == "" && p.Category == "" &&
		p.Content == "" && p.CoverImage == ""
}

// SearchCfg blog post search config
type SearchCfg struct {
	// Query case-insensitive substring matched against title,
	// excerpt and content
	Query string `json:"query"`
	// AuthorName optional substring matched against the resolved
	// author display name
	AuthorName string `json:"author_name"`
}
