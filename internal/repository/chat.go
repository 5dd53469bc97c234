package repository

import (
	"context"
	"errors"

	"github.com/sid2487/Instagram-Clone/internal/cache"
	"github.com/sid2487/Instagram-Clone/internal/models"

	"gorm.io/gorm"
)

// ErrConversationExists signals that the unique pair key already has a
// conversation. Callers re-fetch by pair key instead of failing.
var ErrConversationExists = errors.New("conversation already exists for pair")

// ChatRepository defines the interface for direct-message data operations
type ChatRepository interface {
	GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error)
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	GetConversation(ctx context.Context, id uint) (*models.Conversation, error)
	GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error) {
	var conv models.Conversation
	err := readDB(r.db).WithContext(ctx).Where("pair_key = ?", pairKey).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *chatRepository) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrConversationExists
		}
		return err
	}
	return nil
}

func (r *chatRepository) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := readDB(r.db).WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		First(&conv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Conversation", id)
		}
		return nil, err
	}
	return &conv, nil
}

func (r *chatRepository) GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := readDB(r.db).WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Preload("UserA").
		Preload("UserB").
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil || len(conversations) == 0 {
		return conversations, err
	}

	// Latest message per conversation as the inbox preview. A plain
	// Preload with Limit(1) would cap the whole preload query at one row
	// across every conversation, so the previews are fetched separately.
	ids := make([]uint, len(conversations))
	for i, conv := range conversations {
		ids[i] = conv.ID
	}
	var previews []models.Message
	err = readDB(r.db).WithContext(ctx).
		Where("id IN (SELECT MAX(id) FROM messages WHERE conversation_id IN ? GROUP BY conversation_id)", ids).
		Find(&previews).Error
	if err != nil {
		return nil, err
	}
	byConversation := make(map[uint]models.Message, len(previews))
	for _, msg := range previews {
		byConversation[msg.ConversationID] = msg
	}
	for _, conv := range conversations {
		if msg, ok := byConversation[conv.ID]; ok {
			conv.Messages = []models.Message{msg}
		}
	}
	return conversations, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		// Bump the conversation so inbox ordering follows activity.
		return tx.Model(&models.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("updated_at", msg.CreatedAt).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateMessages(ctx, msg.ConversationID)
	return nil
}

func (r *chatRepository) GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := readDB(r.db).WithContext(ctx).
		Where("conversation_id = ?", convID).
		Preload("Sender").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Fetched DESC to page from the latest, returned ASC for the client.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
