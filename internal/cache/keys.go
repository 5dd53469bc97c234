package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	PostKeyPrefix      = "post:%d"
	PostsListKeyName   = "posts:feed:first"
	UserPostsKeyPrefix = "user:%d:posts"
	MessagesKeyPrefix  = "conversation:%d:messages"
)

const (
	UserTTL     = 5 * time.Minute
	PostTTL     = 30 * time.Minute
	FeedTTL     = 1 * time.Minute
	MessagesTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// PostsListKey is the cache key for the first page of the anonymous feed.
// Per-viewer pages are not cached because liked/bookmarked flags differ.
func PostsListKey() string {
	return PostsListKeyName
}

func UserPostsKey(userID uint) string {
	return fmt.Sprintf(UserPostsKeyPrefix, userID)
}

func MessagesKey(conversationID uint) string {
	return fmt.Sprintf(MessagesKeyPrefix, conversationID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidatePostsList drops the cached feed page and the author's post list.
func InvalidatePostsList(ctx context.Context, authorID uint) {
	Invalidate(ctx, PostsListKey())
	Invalidate(ctx, UserPostsKey(authorID))
}

func InvalidateMessages(ctx context.Context, conversationID uint) {
	Invalidate(ctx, MessagesKey(conversationID))
}
