package repository

import (
	"context"
	"testing"

	"github.com/sid2487/Instagram-Clone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	user1 := &models.User{Username: "user1", Email: "u1@e.com", Password: "h"}
	user2 := &models.User{Username: "user2", Email: "u2@e.com", Password: "h"}
	user3 := &models.User{Username: "user3", Email: "u3@e.com", Password: "h"}
	require.NoError(t, db.Create(user1).Error)
	require.NoError(t, db.Create(user2).Error)
	require.NoError(t, db.Create(user3).Error)

	t.Run("CreateConversation normalizes the pair", func(t *testing.T) {
		conv := &models.Conversation{UserAID: user2.ID, UserBID: user1.ID}
		require.NoError(t, repo.CreateConversation(ctx, conv))
		assert.NotZero(t, conv.ID)
		assert.Equal(t, user1.ID, conv.UserAID)
		assert.Equal(t, user2.ID, conv.UserBID)
		assert.Equal(t, models.ConversationPairKey(user1.ID, user2.ID), conv.PairKey)
	})

	t.Run("duplicate pair is rejected regardless of order", func(t *testing.T) {
		dup := &models.Conversation{UserAID: user1.ID, UserBID: user2.ID}
		err := repo.CreateConversation(ctx, dup)
		assert.ErrorIs(t, err, ErrConversationExists)
	})

	t.Run("GetByPairKey", func(t *testing.T) {
		conv, err := repo.GetByPairKey(ctx, models.ConversationPairKey(user2.ID, user1.ID))
		require.NoError(t, err)
		require.NotNil(t, conv)
		assert.True(t, conv.Includes(user1.ID))
		assert.True(t, conv.Includes(user2.ID))
		assert.False(t, conv.Includes(user3.ID))

		missing, err := repo.GetByPairKey(ctx, models.ConversationPairKey(user1.ID, user3.ID))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("CreateMessage and GetMessages in order", func(t *testing.T) {
		conv, err := repo.GetByPairKey(ctx, models.ConversationPairKey(user1.ID, user2.ID))
		require.NoError(t, err)

		for _, text := range []string{"hello", "hi back", "how are you"} {
			msg := &models.Message{
				ConversationID: conv.ID,
				SenderID:       user1.ID,
				ReceiverID:     user2.ID,
				Text:           text,
			}
			require.NoError(t, repo.CreateMessage(ctx, msg))
			assert.NotZero(t, msg.ID)
		}

		msgs, err := repo.GetMessages(ctx, conv.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "hello", msgs[0].Text)
		assert.Equal(t, "how are you", msgs[2].Text)
		require.NotNil(t, msgs[0].Sender)
		assert.Equal(t, user1.Username, msgs[0].Sender.Username)
	})

	t.Run("GetUserConversations", func(t *testing.T) {
		other := &models.Conversation{UserAID: user1.ID, UserBID: user3.ID}
		require.NoError(t, repo.CreateConversation(ctx, other))
		require.NoError(t, repo.CreateMessage(ctx, &models.Message{
			ConversationID: other.ID,
			SenderID:       user3.ID,
			ReceiverID:     user1.ID,
			Text:           "hey there",
		}))

		convs, err := repo.GetUserConversations(ctx, user1.ID)
		require.NoError(t, err)
		require.Len(t, convs, 2)

		// Every conversation carries its own latest message as the
		// inbox preview, not just the first one fetched.
		previews := map[uint]string{}
		for _, conv := range convs {
			require.Len(t, conv.Messages, 1)
			previews[conv.ID] = conv.Messages[0].Text
		}
		assert.Equal(t, "hey there", previews[other.ID])

		first, err := repo.GetByPairKey(ctx, models.ConversationPairKey(user1.ID, user2.ID))
		require.NoError(t, err)
		assert.Equal(t, "how are you", previews[first.ID])

		convs, err = repo.GetUserConversations(ctx, user3.ID)
		require.NoError(t, err)
		assert.Len(t, convs, 1)
	})
}
