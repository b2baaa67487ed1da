package model

import "time"

// Bookmark a per-actor saved reference to a post.
//
// Slug, Title and Date are a display snapshot captured at bookmark
// time; they are not refreshed when the post changes or is deleted.
type Bookmark struct {
	// UserID owning actor
	UserID string `json:"user_id"`
	// PostID referenced post
	PostID string `json:"post_id"`
	// Slug post slug at bookmark time
	Slug string `json:"slug"`
	// Title post title at bookmark time
	Title string `json:"title"`
	// Date post date at bookmark time
	Date string `json:"date"`
	// CreatedAt time when the bookmark was created
	CreatedAt time.Time `json:"created_at"`
}
