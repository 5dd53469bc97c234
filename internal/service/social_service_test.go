package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid2487/Instagram-Clone/internal/models"
)

func TestFollowOrUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("first toggle follows", func(t *testing.T) {
		social := noopSocialRepo()
		var edge [2]uint
		social.followFn = func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			edge = [2]uint{followerID, followeeID}
			return true, nil
		}
		social.unfollowFn = func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			t.Fatal("unfollow should not run when the edge was inserted")
			return false, nil
		}
		svc := NewSocialService(social, noopUserRepo())

		res, err := svc.FollowOrUnfollow(ctx, 2, 9)
		require.NoError(t, err)
		assert.Equal(t, models.FollowStateFollowing, res.State)
		assert.Equal(t, [2]uint{2, 9}, edge)
	})

	t.Run("second toggle unfollows", func(t *testing.T) {
		social := noopSocialRepo()
		social.followFn = func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			return false, nil
		}
		var unfollowed bool
		social.unfollowFn = func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			unfollowed = true
			return true, nil
		}
		svc := NewSocialService(social, noopUserRepo())

		res, err := svc.FollowOrUnfollow(ctx, 2, 9)
		require.NoError(t, err)
		assert.Equal(t, models.FollowStateUnfollowed, res.State)
		assert.True(t, unfollowed)
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		svc := NewSocialService(noopSocialRepo(), noopUserRepo())

		_, err := svc.FollowOrUnfollow(ctx, 2, 2)
		require.Error(t, err)
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("deleted actor is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(ctx context.Context, id uint) (*models.User, error) {
			if id == 2 {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: id, Username: "target"}, nil
		}
		social := noopSocialRepo()
		social.followFn = func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			t.Fatal("follow should not run for a missing actor")
			return false, nil
		}
		svc := NewSocialService(social, users)

		_, err := svc.FollowOrUnfollow(ctx, 2, 9)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})

	t.Run("unknown target is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(ctx context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewSocialService(noopSocialRepo(), users)

		_, err := svc.FollowOrUnfollow(ctx, 2, 99)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}

func TestFollowersAndFollowing(t *testing.T) {
	ctx := context.Background()

	t.Run("nil lists become empty slices", func(t *testing.T) {
		social := noopSocialRepo()
		social.followersFn = func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
			return nil, nil
		}
		social.followingFn = func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
			return nil, nil
		}
		svc := NewSocialService(social, noopUserRepo())

		followers, err := svc.Followers(ctx, 2, 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, followers)
		assert.Empty(t, followers)

		following, err := svc.Following(ctx, 2, 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, following)
		assert.Empty(t, following)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(ctx context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewSocialService(noopSocialRepo(), users)

		_, err := svc.Followers(ctx, 99, 10, 0)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}
