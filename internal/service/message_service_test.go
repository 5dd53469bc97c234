package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/repository"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("first contact creates the conversation", func(t *testing.T) {
		chat := noopChatRepo()
		var createdConv *models.Conversation
		chat.createConversationFn = func(ctx context.Context, conv *models.Conversation) error {
			conv.ID = 4
			createdConv = conv
			return nil
		}
		var sent *models.Message
		chat.createMessageFn = func(ctx context.Context, msg *models.Message) error {
			msg.ID = 1
			sent = msg
			return nil
		}
		svc := NewMessageService(chat, noopUserRepo())

		msg, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 2, Text: "hey"})
		require.NoError(t, err)
		require.NotNil(t, createdConv)
		assert.Equal(t, uint(4), msg.ConversationID)
		assert.Equal(t, uint(9), sent.SenderID)
		assert.Equal(t, uint(2), sent.ReceiverID)
		assert.Equal(t, "hey", sent.Text)
	})

	t.Run("existing conversation is reused", func(t *testing.T) {
		chat := noopChatRepo()
		chat.getByPairKeyFn = func(ctx context.Context, pairKey string) (*models.Conversation, error) {
			assert.Equal(t, models.ConversationPairKey(2, 9), pairKey)
			return &models.Conversation{ID: 4, UserAID: 2, UserBID: 9}, nil
		}
		chat.createConversationFn = func(ctx context.Context, conv *models.Conversation) error {
			t.Fatal("no new conversation should be created for an existing pair")
			return nil
		}
		svc := NewMessageService(chat, noopUserRepo())

		msg, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 2, Text: "again"})
		require.NoError(t, err)
		assert.Equal(t, uint(4), msg.ConversationID)
	})

	t.Run("lost insert race falls back to the winner's row", func(t *testing.T) {
		chat := noopChatRepo()
		lookups := 0
		chat.getByPairKeyFn = func(ctx context.Context, pairKey string) (*models.Conversation, error) {
			lookups++
			if lookups == 1 {
				return nil, nil
			}
			return &models.Conversation{ID: 4, UserAID: 2, UserBID: 9}, nil
		}
		chat.createConversationFn = func(ctx context.Context, conv *models.Conversation) error {
			return repository.ErrConversationExists
		}
		svc := NewMessageService(chat, noopUserRepo())

		msg, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 2, Text: "raced"})
		require.NoError(t, err)
		assert.Equal(t, uint(4), msg.ConversationID)
		assert.Equal(t, 2, lookups)
	})

	t.Run("self message is rejected", func(t *testing.T) {
		svc := NewMessageService(noopChatRepo(), noopUserRepo())

		_, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 9, Text: "hi me"})
		require.Error(t, err)
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		svc := NewMessageService(noopChatRepo(), noopUserRepo())

		_, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 2, Text: "   "})
		require.Error(t, err)
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("unknown receiver is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(ctx context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewMessageService(noopChatRepo(), users)

		_, err := svc.SendMessage(ctx, SendMessageInput{SenderID: 9, ReceiverID: 99, Text: "hello"})
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}

func TestGetMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("no conversation yet yields empty history", func(t *testing.T) {
		svc := NewMessageService(noopChatRepo(), noopUserRepo())

		msgs, err := svc.GetMessages(ctx, 9, 2, 50, 0)
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("returns conversation history", func(t *testing.T) {
		chat := noopChatRepo()
		chat.getByPairKeyFn = func(ctx context.Context, pairKey string) (*models.Conversation, error) {
			return &models.Conversation{ID: 4, UserAID: 2, UserBID: 9}, nil
		}
		chat.getMessagesFn = func(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
			assert.Equal(t, uint(4), convID)
			return []*models.Message{{ID: 1, Text: "hey"}, {ID: 2, Text: "yo"}}, nil
		}
		svc := NewMessageService(chat, noopUserRepo())

		msgs, err := svc.GetMessages(ctx, 9, 2, 50, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})
}

func TestGetConversations(t *testing.T) {
	chat := noopChatRepo()
	chat.getUserConversationsFn = func(ctx context.Context, userID uint) ([]*models.Conversation, error) {
		return nil, nil
	}
	svc := NewMessageService(chat, noopUserRepo())

	convs, err := svc.GetConversations(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, convs)
	assert.Empty(t, convs)
}
