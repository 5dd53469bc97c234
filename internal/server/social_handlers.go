package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sid2487/Instagram-Clone/internal/models"
)

// FollowOrUnfollow toggles the follow relationship from the requesting
// user to the target user and notifies the target on a new follow.
func (s *Server) FollowOrUnfollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followerID := currentUserID(c)
	result, err := s.socialService.FollowOrUnfollow(c.Context(), followerID, targetID)
	if err != nil {
		return models.RespondError(c, err)
	}

	if result.State == models.FollowStateFollowing {
		s.publishUserEvent(targetID, EventNewFollower, map[string]interface{}{
			"follower_id": followerID,
		})
	}

	return c.JSON(fiber.Map{
		"state": result.State,
		"user":  result.User,
	})
}

// GetFollowers lists the users following the given user.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 50)
	users, err := s.socialService.Followers(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetFollowing lists the users the given user follows.
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 50)
	users, err := s.socialService.Following(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}
