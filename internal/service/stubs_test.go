package service

import (
	"context"

	"github.com/sid2487/Instagram-Clone/internal/models"
)

// Function-field stubs for the repository interfaces. Tests override only
// the calls they care about; everything else stays at the noop default.

type userRepoStub struct {
	getByIDFn          func(ctx context.Context, id uint) (*models.User, error)
	getByIDWithPostsFn func(ctx context.Context, id uint, limit int) (*models.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*models.User, error)
	createFn           func(ctx context.Context, user *models.User) error
	updateFn           func(ctx context.Context, user *models.User) error
	deleteFn           func(ctx context.Context, id uint) error
	listFn             func(ctx context.Context, limit, offset int) ([]models.User, error)
	getSuggestedFn     func(ctx context.Context, forUserID uint, limit int) ([]models.User, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "someone"}, nil
		},
		getByIDWithPostsFn: func(ctx context.Context, id uint, limit int) (*models.User, error) {
			return &models.User{ID: id, Username: "someone"}, nil
		},
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		getByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, user *models.User) error { return nil },
		updateFn: func(ctx context.Context, user *models.User) error { return nil },
		deleteFn: func(ctx context.Context, id uint) error { return nil },
		listFn: func(ctx context.Context, limit, offset int) ([]models.User, error) {
			return []models.User{}, nil
		},
		getSuggestedFn: func(ctx context.Context, forUserID uint, limit int) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) GetSuggested(ctx context.Context, forUserID uint, limit int) ([]models.User, error) {
	return s.getSuggestedFn(ctx, forUserID, limit)
}

type postRepoStub struct {
	createFn         func(ctx context.Context, post *models.Post) error
	getByIDFn        func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	getByUserIDFn    func(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	listFn           func(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	deleteCascadeFn  func(ctx context.Context, id uint) error
	isLikedFn        func(ctx context.Context, userID, postID uint) (bool, error)
	likeFn           func(ctx context.Context, userID, postID uint) (bool, error)
	unlikeFn         func(ctx context.Context, userID, postID uint) (bool, error)
	bookmarkFn       func(ctx context.Context, userID, postID uint) (bool, error)
	unbookmarkFn     func(ctx context.Context, userID, postID uint) (bool, error)
	isBookmarkedFn   func(ctx context.Context, userID, postID uint) (bool, error)
	listBookmarkedFn func(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(ctx context.Context, post *models.Post) error {
			post.ID = 1
			return nil
		},
		getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, ImageURL: "/media/a.jpg"}, nil
		},
		getByUserIDFn: func(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
		listFn: func(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
		deleteCascadeFn: func(ctx context.Context, id uint) error { return nil },
		isLikedFn:       func(ctx context.Context, userID, postID uint) (bool, error) { return false, nil },
		likeFn:          func(ctx context.Context, userID, postID uint) (bool, error) { return true, nil },
		unlikeFn:        func(ctx context.Context, userID, postID uint) (bool, error) { return true, nil },
		bookmarkFn:      func(ctx context.Context, userID, postID uint) (bool, error) { return true, nil },
		unbookmarkFn:    func(ctx context.Context, userID, postID uint) (bool, error) { return true, nil },
		isBookmarkedFn:  func(ctx context.Context, userID, postID uint) (bool, error) { return false, nil },
		listBookmarkedFn: func(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
	}
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) Bookmark(ctx context.Context, userID, postID uint) (bool, error) {
	return s.bookmarkFn(ctx, userID, postID)
}
func (s *postRepoStub) Unbookmark(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unbookmarkFn(ctx, userID, postID)
}
func (s *postRepoStub) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isBookmarkedFn(ctx, userID, postID)
}
func (s *postRepoStub) ListBookmarked(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listBookmarkedFn(ctx, userID, limit, offset)
}

type commentRepoStub struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
	deleteFn     func(ctx context.Context, id, postID uint) error
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(ctx context.Context, comment *models.Comment) error {
			comment.ID = 1
			return nil
		},
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, PostID: 1, Text: "nice"}, nil
		},
		listByPostFn: func(ctx context.Context, postID uint) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		},
		deleteFn: func(ctx context.Context, id, postID uint) error { return nil },
	}
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id, postID uint) error {
	return s.deleteFn(ctx, id, postID)
}

type socialRepoStub struct {
	isFollowingFn func(ctx context.Context, followerID, followeeID uint) (bool, error)
	followFn      func(ctx context.Context, followerID, followeeID uint) (bool, error)
	unfollowFn    func(ctx context.Context, followerID, followeeID uint) (bool, error)
	followersFn   func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	followingFn   func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	countsFn      func(ctx context.Context, userID uint) (int64, int64, error)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		isFollowingFn: func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			return false, nil
		},
		followFn: func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			return true, nil
		},
		unfollowFn: func(ctx context.Context, followerID, followeeID uint) (bool, error) {
			return true, nil
		},
		followersFn: func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
			return []models.User{}, nil
		},
		followingFn: func(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
			return []models.User{}, nil
		},
		countsFn: func(ctx context.Context, userID uint) (int64, int64, error) {
			return 0, 0, nil
		},
	}
}

func (s *socialRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *socialRepoStub) Follow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *socialRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *socialRepoStub) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followersFn(ctx, userID, limit, offset)
}
func (s *socialRepoStub) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followingFn(ctx, userID, limit, offset)
}
func (s *socialRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.countsFn(ctx, userID)
}

type chatRepoStub struct {
	getByPairKeyFn         func(ctx context.Context, pairKey string) (*models.Conversation, error)
	createConversationFn   func(ctx context.Context, conv *models.Conversation) error
	getConversationFn      func(ctx context.Context, id uint) (*models.Conversation, error)
	getUserConversationsFn func(ctx context.Context, userID uint) ([]*models.Conversation, error)
	createMessageFn        func(ctx context.Context, msg *models.Message) error
	getMessagesFn          func(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		getByPairKeyFn: func(ctx context.Context, pairKey string) (*models.Conversation, error) {
			return nil, nil
		},
		createConversationFn: func(ctx context.Context, conv *models.Conversation) error {
			conv.ID = 1
			return nil
		},
		getConversationFn: func(ctx context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id, UserAID: 1, UserBID: 2}, nil
		},
		getUserConversationsFn: func(ctx context.Context, userID uint) ([]*models.Conversation, error) {
			return []*models.Conversation{}, nil
		},
		createMessageFn: func(ctx context.Context, msg *models.Message) error {
			msg.ID = 1
			return nil
		},
		getMessagesFn: func(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
			return []*models.Message{}, nil
		},
	}
}

func (s *chatRepoStub) GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error) {
	return s.getByPairKeyFn(ctx, pairKey)
}
func (s *chatRepoStub) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	return s.createConversationFn(ctx, conv)
}
func (s *chatRepoStub) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	return s.getConversationFn(ctx, id)
}
func (s *chatRepoStub) GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	return s.getUserConversationsFn(ctx, userID)
}
func (s *chatRepoStub) CreateMessage(ctx context.Context, msg *models.Message) error {
	return s.createMessageFn(ctx, msg)
}
func (s *chatRepoStub) GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
	return s.getMessagesFn(ctx, convID, limit, offset)
}
