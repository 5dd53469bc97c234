package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a single image post. The author is immutable after creation;
// ownership of comments and likes follows the post.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Caption  string `json:"caption"`
	ImageURL string `gorm:"not null" json:"image_url"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`

	// LikesCount is not persisted; computed at query time.
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time.
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// Liked indicates whether the requesting user liked this post (computed).
	Liked bool `gorm:"->;-:migration" json:"liked"`
	// Bookmarked indicates whether the requesting user saved this post (computed).
	Bookmarked bool `gorm:"->;-:migration" json:"bookmarked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
