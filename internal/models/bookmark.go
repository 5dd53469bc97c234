package models

import "time"

// Bookmark marks a post saved by a user. Unique per (user, post).
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// BookmarkState is the outcome reported by a bookmark toggle.
type BookmarkState string

const (
	// BookmarkStateSaved means the post is now in the user's bookmarks.
	BookmarkStateSaved BookmarkState = "saved"
	// BookmarkStateUnsaved means the post was removed from the bookmarks.
	BookmarkStateUnsaved BookmarkState = "unsaved"
)
