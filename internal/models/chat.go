package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Conversation is the message thread between exactly two users. The
// participant pair is stored normalized (lower user id first) and carries
// a unique key, so a pair can never own more than one conversation no
// matter which side created it first.
type Conversation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserAID uint   `gorm:"not null;index" json:"user_a_id"`
	UserBID uint   `gorm:"not null;index" json:"user_b_id"`
	PairKey string `gorm:"uniqueIndex;not null" json:"-"`

	UserA User `gorm:"foreignKey:UserAID" json:"user_a,omitempty"`
	UserB User `gorm:"foreignKey:UserBID" json:"user_b,omitempty"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationPairKey returns the order-independent key for a user pair.
func ConversationPairKey(userID1, userID2 uint) string {
	if userID1 > userID2 {
		userID1, userID2 = userID2, userID1
	}
	return fmt.Sprintf("%d:%d", userID1, userID2)
}

// BeforeCreate normalizes the participant order and derives the pair key.
func (c *Conversation) BeforeCreate(_ *gorm.DB) error {
	if c.UserAID > c.UserBID {
		c.UserAID, c.UserBID = c.UserBID, c.UserAID
	}
	c.PairKey = ConversationPairKey(c.UserAID, c.UserBID)
	return nil
}

// Includes reports whether the user is one of the two participants.
func (c *Conversation) Includes(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Message is one entry in a conversation. Immutable once created.
type Message struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ConversationID uint          `gorm:"not null;index" json:"conversation_id"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID" json:"conversation,omitempty"`
	SenderID       uint          `gorm:"not null;index" json:"sender_id"`
	Sender         *User         `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID     uint          `gorm:"not null;index" json:"receiver_id"`
	Text           string        `gorm:"type:text;not null" json:"text"`
	CreatedAt      time.Time     `json:"created_at"`
}
