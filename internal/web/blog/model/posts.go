// Package model contains all the models used in the application.
package model

import (
	"time"
)

// PostStatus moderation status of a post
type PostStatus string

const (
	// PostStatusPending waiting for admin review
	PostStatusPending PostStatus = "pending"
	// PostStatusApproved publicly visible
	PostStatusApproved PostStatus = "approved"
	// PostStatusRejected declined by an admin
	PostStatusRejected PostStatus = "rejected"
)

// Valid whether s is one of the enumerated statuses
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected:
		return true
	default:
		return false
	}
}

// Post blog posts
type Post struct {
	// ID unique identifier for the post
	ID string `json:"id"`
	// Slug human-readable identifier derived from the title, unique
	Slug string `json:"slug"`
	// Title title of the post
	Title string `json:"title"`
	// Excerpt short summary shown in listings
	Excerpt string `json:"excerpt"`
	// Category display category, upper case
	Category string `json:"category"`
	// Content raw markdown content
	Content string `json:"content"`
	// CoverImage cover image url
	CoverImage string `json:"cover_image"`
	// Date creation date, YYYY-MM-DD
	Date string `json:"date"`
	// ReadingTime derived display string like "5 MIN READ"
	ReadingTime string `json:"reading_time"`
	// Status moderation status
	Status PostStatus `json:"status"`
	// AuthorID owning actor, set at creation and never reassigned
	AuthorID string `json:"author_id"`
	// CreatedAt time when the post was created
	CreatedAt time.Time `json:"created_at"`
	// ModifiedAt time when the post was last modified
	ModifiedAt time.Time `json:"modified_at"`
}
