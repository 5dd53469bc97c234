package repository

import (
	"context"
	"testing"

	"github.com/sid2487/Instagram-Clone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := &models.User{Username: "author", Email: "author@example.com", Password: "h"}
	viewer := &models.User{Username: "viewer", Email: "viewer@example.com", Password: "h"}
	require.NoError(t, db.Create(author).Error)
	require.NoError(t, db.Create(viewer).Error)

	first := &models.Post{Caption: "first", ImageURL: "/media/a.webp", UserID: author.ID}
	second := &models.Post{Caption: "second", ImageURL: "/media/b.webp", UserID: author.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, db.Create(&models.Like{UserID: viewer.ID, PostID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Text: "nice", UserID: viewer.ID, PostID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Bookmark{UserID: viewer.ID, PostID: second.ID}).Error)

	t.Run("List newest first with viewer flags", func(t *testing.T) {
		posts, err := repo.List(ctx, 10, 0, viewer.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)

		assert.Equal(t, "second", posts[0].Caption)
		assert.True(t, posts[0].Bookmarked)
		assert.False(t, posts[0].Liked)

		assert.Equal(t, "first", posts[1].Caption)
		assert.True(t, posts[1].Liked)
		assert.Equal(t, 1, posts[1].LikesCount)
		assert.Equal(t, 1, posts[1].CommentsCount)
		assert.Equal(t, author.Username, posts[1].User.Username)
	})

	t.Run("anonymous viewer gets false flags", func(t *testing.T) {
		posts, err := repo.List(ctx, 10, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		for _, p := range posts {
			assert.False(t, p.Liked)
			assert.False(t, p.Bookmarked)
		}
	})

	t.Run("GetByUserID filters by author", func(t *testing.T) {
		posts, err := repo.GetByUserID(ctx, author.ID, 10, 0, viewer.ID)
		require.NoError(t, err)
		assert.Len(t, posts, 2)

		posts, err = repo.GetByUserID(ctx, viewer.ID, 10, 0, viewer.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("GetByID missing post", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999, viewer.ID)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}

func TestPostRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := &models.User{Username: "author", Email: "author@example.com", Password: "h"}
	require.NoError(t, db.Create(author).Error)

	post := &models.Post{Caption: "doomed", ImageURL: "/media/c.webp", UserID: author.ID}
	keeper := &models.Post{Caption: "keeper", ImageURL: "/media/d.webp", UserID: author.ID}
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, repo.Create(ctx, keeper))

	require.NoError(t, db.Create(&models.Comment{Text: "c", UserID: author.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: author.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Bookmark{UserID: author.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: author.ID, PostID: keeper.ID}).Error)

	require.NoError(t, repo.DeleteCascade(ctx, post.ID))

	var likeCount, bookmarkCount, commentCount int64
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeCount)
	db.Model(&models.Bookmark{}).Where("post_id = ?", post.ID).Count(&bookmarkCount)
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, bookmarkCount)
	assert.Zero(t, commentCount)

	_, err := repo.GetByID(ctx, post.ID, 0)
	assert.Error(t, err)

	// Unrelated rows must survive.
	var keeperLikes int64
	db.Model(&models.Like{}).Where("post_id = ?", keeper.ID).Count(&keeperLikes)
	assert.EqualValues(t, 1, keeperLikes)
}

// Runs against sqlite to prove the conflict-insert works on every
// dialect the repository is used with, not just postgres.
func TestPostRepository_LikeToggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "liker", Email: "liker@example.com", Password: "h"}
	require.NoError(t, db.Create(user).Error)
	post := &models.Post{Caption: "likeable", ImageURL: "/media/l.webp", UserID: user.ID}
	require.NoError(t, repo.Create(ctx, post))

	t.Run("first like inserts", func(t *testing.T) {
		added, err := repo.Like(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("repeat like is a no-op", func(t *testing.T) {
		added, err := repo.Like(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, added)

		var count int64
		db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("unlike removes the row once", func(t *testing.T) {
		removed, err := repo.Unlike(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Unlike(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestPostRepository_Bookmarks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "reader", Email: "reader@example.com", Password: "h"}
	require.NoError(t, db.Create(user).Error)
	post := &models.Post{Caption: "saveable", ImageURL: "/media/e.webp", UserID: user.ID}
	require.NoError(t, repo.Create(ctx, post))

	added, err := repo.Bookmark(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Bookmark(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, added)

	saved, err := repo.IsBookmarked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	posts, err := repo.ListBookmarked(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "saveable", posts[0].Caption)
	assert.True(t, posts[0].Bookmarked)

	removed, err := repo.Unbookmark(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	posts, err = repo.ListBookmarked(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
