package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sid2487/Instagram-Clone/internal/models"
)

func TestFollowOrUnfollow(t *testing.T) {
	s, app, db := newTestServer(t)
	follower := createTestUser(t, db, "follower")
	target := createTestUser(t, db, "target")

	followReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+itoa(target.ID)+"/follow", nil)
		req.Header.Set("Authorization", authHeader(t, s, follower))
		return req
	}

	t.Run("First Toggle Follows", func(t *testing.T) {
		resp := doRequest(t, app, followReq())
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "following", body["state"])
	})

	t.Run("Second Toggle Unfollows", func(t *testing.T) {
		resp := doRequest(t, app, followReq())
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "unfollowed", body["state"])
	})

	t.Run("Self Follow Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+itoa(follower.ID)+"/follow", nil)
		req.Header.Set("Authorization", authHeader(t, s, follower))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/99999/follow", nil)
		req.Header.Set("Authorization", authHeader(t, s, follower))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestFollowersAndFollowingAgree(t *testing.T) {
	s, app, db := newTestServer(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}).Error)

	get := func(path string, as *models.User) []interface{} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", authHeader(t, s, as))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		users, ok := decodeBody(t, resp)["users"].([]interface{})
		require.True(t, ok)
		return users
	}

	// The same edge appears in bob's followers and alice's following.
	bobFollowers := get("/api/users/"+itoa(bob.ID)+"/followers", alice)
	require.Len(t, bobFollowers, 1)
	assert.Equal(t, "alice", bobFollowers[0].(map[string]interface{})["username"])

	aliceFollowing := get("/api/users/"+itoa(alice.ID)+"/following", alice)
	require.Len(t, aliceFollowing, 1)
	assert.Equal(t, "bob", aliceFollowing[0].(map[string]interface{})["username"])

	assert.Empty(t, get("/api/users/"+itoa(alice.ID)+"/followers", alice))
}
