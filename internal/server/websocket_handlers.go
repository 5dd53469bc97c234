package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/sid2487/Instagram-Clone/internal/middleware"
	"github.com/sid2487/Instagram-Clone/internal/notifications"
	"github.com/sid2487/Instagram-Clone/internal/service"
)

// WebsocketHandler upgrades authenticated connections and attaches them
// to the events hub. Besides receiving pushed events, clients may send
// direct messages over the socket instead of the HTTP endpoint.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ctx := context.Background()

		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			log.Printf("WebSocket: unauthenticated connection attempt")
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		if s.hub == nil {
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			log.Printf("WebSocket: failed to register user %d: %v", userID, err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		client.IncomingHandler = func(c *notifications.Client, raw []byte) {
			var incoming struct {
				Type       string `json:"type"`
				ReceiverID uint   `json:"receiver_id"`
				Text       string `json:"text"`
			}
			if err := json.Unmarshal(raw, &incoming); err != nil {
				log.Printf("WebSocket: invalid message from user %d", userID)
				return
			}

			switch incoming.Type {
			case "message":
				s.handleSocketMessage(ctx, c, incoming.ReceiverID, incoming.Text)
			case "ping":
				c.TrySend([]byte(`{"type":"pong"}`))
			}
		}

		welcome, merr := json.Marshal(map[string]interface{}{
			"type":    "connected",
			"payload": map[string]interface{}{"user_id": userID},
		})
		if merr == nil {
			client.TrySend(welcome)
		}

		go client.WritePump()

		// Read pump runs in the handler goroutine and blocks until the
		// connection drops.
		client.ReadPump()
	})
}

// handleSocketMessage sends a direct message submitted over the socket.
// The rate limit matches the HTTP send endpoint.
func (s *Server) handleSocketMessage(ctx context.Context, c *notifications.Client, receiverID uint, text string) {
	if receiverID == 0 {
		return
	}

	id := fmt.Sprintf("user:%d", c.UserID)
	allowed, _ := middleware.CheckRateLimit(ctx, s.redis, "send_message", id, 30, time.Minute)
	if !allowed {
		c.TrySend([]byte(`{"type":"error","payload":{"message":"Rate limit exceeded. Please wait a moment."}}`))
		return
	}

	message, err := s.messageService.SendMessage(ctx, service.SendMessageInput{
		SenderID:   c.UserID,
		ReceiverID: receiverID,
		Text:       text,
	})
	if err != nil {
		reply, merr := json.Marshal(map[string]interface{}{
			"type":    "error",
			"payload": map[string]interface{}{"message": err.Error()},
		})
		if merr == nil {
			c.TrySend(reply)
		}
		return
	}

	s.publishUserEvent(receiverID, EventMessageReceived, map[string]interface{}{
		"message_id":      message.ID,
		"conversation_id": message.ConversationID,
		"sender_id":       c.UserID,
		"text":            message.Text,
		"created_at":      message.CreatedAt,
	})

	// Echo the stored message back so the sender can reconcile state.
	ack, merr := json.Marshal(map[string]interface{}{
		"type":    "message_sent",
		"payload": message,
	})
	if merr == nil {
		c.TrySend(ack)
	}
}
