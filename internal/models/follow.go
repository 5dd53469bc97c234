package models

import "time"

// Follow is a directed edge: FollowerID follows FolloweeID. Both the
// follower list of a user and the following list of another are views
// over the same rows, so the two lists cannot drift apart.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// FollowState is the relationship outcome reported by a follow toggle.
type FollowState string

const (
	// FollowStateFollowing means the edge now exists.
	FollowStateFollowing FollowState = "following"
	// FollowStateUnfollowed means the edge no longer exists.
	FollowStateUnfollowed FollowState = "unfollowed"
)
