package service

import (
	"context"
	"strings"

	"github.com/sid2487/Instagram-Clone/internal/cache"
	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	socialRepo repository.SocialRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Bio      *string
	Gender   *string
	Avatar   *string
}

func NewUserService(userRepo repository.UserRepository, socialRepo repository.SocialRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		socialRepo: socialRepo,
	}
}

// GetProfile returns the user with their recent posts and follower and
// following counts filled in.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	const profilePostLimit = 50

	user, err := s.userRepo.GetByIDWithPosts(ctx, userID, profilePostLimit)
	if err != nil {
		return nil, err
	}

	followers, following, err := s.socialRepo.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FollowersCount = int(followers)
	user.FollowingCount = int(following)

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const (
		maxBioLen      = 500
		maxUsernameLen = 30
	)

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, models.NewValidationError("Username cannot be empty")
		}
		if len(username) > maxUsernameLen {
			return nil, models.NewValidationError("Username too long (max 30 characters)")
		}
		if username != user.Username {
			existing, err := s.userRepo.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, models.NewConflictError("Username already taken")
			}
			user.Username = username
		}
	}
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Gender != nil {
		user.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, user.ID)

	return user, nil
}

// SuggestedUsers returns accounts the user does not follow yet, newest
// first, excluding the user themselves.
func (s *UserService) SuggestedUsers(ctx context.Context, forUserID uint, limit int) ([]models.User, error) {
	const defaultSuggestedLimit = 10

	if limit <= 0 || limit > 50 {
		limit = defaultSuggestedLimit
	}
	users, err := s.userRepo.GetSuggested(ctx, forUserID, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
