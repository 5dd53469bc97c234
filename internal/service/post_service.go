// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"strings"

	"github.com/sid2487/Instagram-Clone/internal/cache"
	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID   uint
	Caption  string
	ImageURL string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// LikeResult reports the post and which way a like toggle landed.
type LikeResult struct {
	Post  *models.Post `json:"post"`
	Liked bool         `json:"liked"`
}

// BookmarkResult reports the outcome of a bookmark toggle.
type BookmarkResult struct {
	Post  *models.Post         `json:"post"`
	State models.BookmarkState `json:"state"`
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxCaptionLen = 2200

	if strings.TrimSpace(in.ImageURL) == "" {
		return nil, models.NewValidationError("Image is required")
	}
	if len(in.Caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2200 characters)")
	}

	post := &models.Post{
		Caption:  in.Caption,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var posts []*models.Post
	var err error

	// Only the anonymous first page is cacheable; liked/bookmarked flags
	// are per-viewer.
	if in.CurrentUserID == 0 && in.Offset == 0 && in.Limit <= 20 {
		err = cache.Aside(ctx, cache.PostsListKey(), "feed", &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset, 0)
			return fetchErr
		})
	} else {
		posts, err = s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
	}
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// DeletePost removes the post and everything hanging off it. Only the
// author may delete; the cascade runs in one transaction.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.DeleteCascade(ctx, in.PostID); err != nil {
		return err
	}
	cache.InvalidatePostsList(ctx, post.UserID)
	return nil
}

// ToggleLike likes the post when the user has not liked it and unlikes it
// otherwise. The repository insert is conflict-free, so two concurrent
// toggles cannot produce a duplicate like.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	added, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	liked := true
	if !added {
		if _, err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
		liked = false
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Post: post, Liked: liked}, nil
}

// UnlikePost removes the like unconditionally. Removing an absent like is
// not an error; the post simply stays unliked.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}

// ToggleBookmark saves the post to the user's bookmarks or removes it.
func (s *PostService) ToggleBookmark(ctx context.Context, userID, postID uint) (*BookmarkResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	added, err := s.postRepo.Bookmark(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	state := models.BookmarkStateSaved
	if !added {
		if _, err := s.postRepo.Unbookmark(ctx, userID, postID); err != nil {
			return nil, err
		}
		state = models.BookmarkStateUnsaved
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return &BookmarkResult{Post: post, State: state}, nil
}

func (s *PostService) ListBookmarks(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	posts, err := s.postRepo.ListBookmarked(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}
