package service

import (
	"context"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/repository"
)

type SocialService struct {
	socialRepo repository.SocialRepository
	userRepo   repository.UserRepository
}

// FollowResult reports which way a follow toggle landed.
type FollowResult struct {
	User  models.UserSummary `json:"user"`
	State models.FollowState `json:"state"`
}

func NewSocialService(socialRepo repository.SocialRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
	}
}

// FollowOrUnfollow toggles the follow edge from followerID to targetID.
// Following a user you already follow unfollows them. A single follows row
// backs both directions of the relationship, so follower and following
// lists can never disagree.
func (s *SocialService) FollowOrUnfollow(ctx context.Context, followerID, targetID uint) (*FollowResult, error) {
	if followerID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	// Both identities must exist. A token can outlive its account, and
	// without this check a deleted follower surfaces as an FK violation.
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	added, err := s.socialRepo.Follow(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}
	state := models.FollowStateFollowing
	if !added {
		if _, err := s.socialRepo.Unfollow(ctx, followerID, targetID); err != nil {
			return nil, err
		}
		state = models.FollowStateUnfollowed
	}

	return &FollowResult{User: target.Summary(), State: state}, nil
}

func (s *SocialService) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.socialRepo.Followers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *SocialService) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.socialRepo.Following(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *SocialService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.socialRepo.IsFollowing(ctx, followerID, followeeID)
}
