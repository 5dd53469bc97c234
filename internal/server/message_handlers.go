package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/service"
)

// SendMessageRequest is the JSON body for sending a direct message.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage sends a direct message to the user in the route and
// pushes a realtime event to the receiver.
func (s *Server) SendMessage(c *fiber.Ctx) error {
	receiverID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	senderID := currentUserID(c)
	message, err := s.messageService.SendMessage(c.Context(), service.SendMessageInput{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	s.publishUserEvent(receiverID, EventMessageReceived, map[string]interface{}{
		"message_id":      message.ID,
		"conversation_id": message.ConversationID,
		"sender_id":       senderID,
		"text":            message.Text,
		"created_at":      message.CreatedAt,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

// GetMessages returns the message history with the user in the route,
// oldest first.
func (s *Server) GetMessages(c *fiber.Ctx) error {
	peerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 50)
	messages, err := s.messageService.GetMessages(
		c.Context(), currentUserID(c), peerID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

// GetConversations lists the requesting user's conversations, most
// recently active first.
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageService.GetConversations(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}
