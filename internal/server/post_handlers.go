package server

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/service"
	"github.com/sid2487/Instagram-Clone/internal/storage"
)

// CreatePost accepts a multipart upload with an "image" file and an
// optional "caption" field, stores the normalized image variants and
// creates the post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image is required"))
	}
	if fileHeader.Size > storage.MaxUploadSizeBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image exceeds the upload size limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded image"))
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSizeBytes+1))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded image"))
	}

	saved, err := s.media.SaveImage(storage.SaveImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   userID,
		Caption:  c.FormValue("caption"),
		ImageURL: saved.URL,
	})
	if err != nil {
		// The post row never existed, so clean up the stored variants.
		if rerr := s.media.Remove(saved.Name); rerr != nil {
			log.Printf("failed to remove media %s after aborted post: %v", saved.Name, rerr)
		}
		return models.RespondError(c, err)
	}

	s.publishBroadcastEvent(EventPostCreated, map[string]interface{}{
		"post_id": post.ID,
		"user":    userSummaryPayload(post.User.Summary()),
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post": post,
		"media": fiber.Map{
			"webp_url": saved.WebPURL,
			"width":    saved.Width,
			"height":   saved.Height,
		},
	})
}

// GetPosts returns the global feed, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: optionalUserID(c),
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost returns a single post by ID.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID, optionalUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// GetUserPosts returns one user's posts, newest first.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.GetUserPosts(
		c.Context(), userID, p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// DeletePost removes a post owned by the requesting user along with its
// comments, likes and bookmarks.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: postID,
	}); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost toggles the requesting user's like on a post.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	result, err := s.postService.ToggleLike(c.Context(), userID, postID)
	if err != nil {
		return models.RespondError(c, err)
	}

	// Only the transition into the liked state notifies the post owner,
	// and never for self-likes.
	if result.Liked && result.Post.UserID != userID {
		s.publishUserEvent(result.Post.UserID, EventPostLiked, map[string]interface{}{
			"post_id":     result.Post.ID,
			"likes_count": result.Post.LikesCount,
			"liked_by":    userID,
		})
	}

	return c.JSON(fiber.Map{
		"liked": result.Liked,
		"post":  result.Post,
	})
}

// UnlikePost removes the requesting user's like regardless of current
// state.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.UnlikePost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"liked": false,
		"post":  post,
	})
}

// BookmarkPost toggles the requesting user's bookmark on a post.
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.postService.ToggleBookmark(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"state": result.State,
		"post":  result.Post,
	})
}

// GetBookmarks returns the requesting user's saved posts.
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	posts, err := s.postService.ListBookmarks(
		c.Context(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
