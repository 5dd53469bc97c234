package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/service"
)

// CreateCommentRequest is the JSON body for creating a comment.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment adds a comment to a post and notifies the post owner.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: userID,
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	if post, perr := s.postService.GetPost(c.Context(), postID, 0); perr == nil && post.UserID != userID {
		s.publishUserEvent(post.UserID, EventCommentCreated, map[string]interface{}{
			"post_id":    postID,
			"comment_id": comment.ID,
			"user":       userSummaryPayload(comment.User.Summary()),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// GetComments lists a post's comments, newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// DeleteComment removes a comment. The comment author and the post
// owner are both allowed to delete.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "id"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
	}); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
