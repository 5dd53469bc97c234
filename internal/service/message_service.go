package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/observability"
	"github.com/sid2487/Instagram-Clone/internal/repository"
)

type MessageService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Text       string
}

func NewMessageService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// SendMessage delivers a direct message, creating the two-party
// conversation on first contact. Conversations are keyed by the sorted
// user-id pair, so at most one exists per pair regardless of who writes
// first or how many sends race.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	const maxMessageLen = 2000

	if in.SenderID == in.ReceiverID {
		return nil, models.NewValidationError("You cannot message yourself")
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Message text is required")
	}
	if len(text) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 2000 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	conv, err := s.findOrCreateConversation(ctx, in.SenderID, in.ReceiverID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       in.SenderID,
		ReceiverID:     in.ReceiverID,
		Text:           text,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	observability.DirectMessagesTotal.Inc()

	return msg, nil
}

func (s *MessageService) findOrCreateConversation(ctx context.Context, a, b uint) (*models.Conversation, error) {
	pairKey := models.ConversationPairKey(a, b)

	conv, err := s.chatRepo.GetByPairKey(ctx, pairKey)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	conv = &models.Conversation{UserAID: a, UserBID: b}
	err = s.chatRepo.CreateConversation(ctx, conv)
	if err == nil {
		return conv, nil
	}
	// A concurrent send for the same pair won the insert. Use its row.
	if errors.Is(err, repository.ErrConversationExists) {
		return s.chatRepo.GetByPairKey(ctx, pairKey)
	}
	return nil, err
}

// GetMessages returns the conversation between the two users oldest first.
// No conversation yet means an empty history, not an error.
func (s *MessageService) GetMessages(ctx context.Context, userID, peerID uint, limit, offset int) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, peerID); err != nil {
		return nil, err
	}

	conv, err := s.chatRepo.GetByPairKey(ctx, models.ConversationPairKey(userID, peerID))
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return []*models.Message{}, nil
	}

	msgs, err := s.chatRepo.GetMessages(ctx, conv.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*models.Message{}
	}
	return msgs, nil
}

func (s *MessageService) GetConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	convs, err := s.chatRepo.GetUserConversations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if convs == nil {
		convs = []*models.Conversation{}
	}
	return convs, nil
}
