package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/observability"
)

// Event type constants prevent typos in event names.
const (
	EventPostCreated     = "post_created"
	EventPostLiked       = "post_liked"
	EventCommentCreated  = "comment_created"
	EventNewFollower     = "new_follower"
	EventMessageReceived = "message_received"
	EventUserStatus      = "user_status"
)

// publishUserEvent delivers an event to one user. With Redis available
// the event goes through pub/sub so every instance's hub sees it; the
// local hub fallback keeps single-instance deployments working.
func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	message, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}
	observability.WebSocketEventsTotal.WithLabelValues(eventType).Inc()

	if s.redis != nil && s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
}

// publishBroadcastEvent delivers an event to every connected user.
func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	message, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}
	observability.WebSocketEventsTotal.WithLabelValues(eventType).Inc()

	if s.redis != nil && s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), message); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
		return
	}
	if s.hub != nil {
		s.hub.BroadcastAll(message)
	}
}

func (s *Server) publishPresenceEvent(userID uint, status string) {
	s.publishBroadcastEvent(EventUserStatus, map[string]interface{}{
		"user_id": userID,
		"status":  status,
	})
}

func marshalEvent(eventType string, payload map[string]interface{}) (string, bool) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return "", false
	}
	return string(eventJSON), true
}

func userSummaryPayload(summary models.UserSummary) map[string]interface{} {
	return map[string]interface{}{
		"id":       summary.ID,
		"username": summary.Username,
		"avatar":   summary.Avatar,
	}
}
