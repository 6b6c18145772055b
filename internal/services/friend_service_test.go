package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Raptors65/hack404/internal/auth"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFriendService() (*FriendService, *fakeFriendshipStore, *fakeUserStore) {
	friendships := &fakeFriendshipStore{}
	users := newFakeUserStore()
	return NewFriendService(friendships, users), friendships, users
}

func identity(id, email string) *auth.Identity {
	return &auth.Identity{UserID: id, Email: email, Name: auth.NameFromEmail(email)}
}

func TestAddFriend_CanonicalOrdering(t *testing.T) {
	service, friendships, users := newFriendService()
	users.add("zzz", "zoe@example.com", "Zoe")
	users.add("aaa", "al@example.com", "Al")

	// Caller's id sorts after the friend's id; the edge must still be
	// stored smaller-first.
	_, created, err := service.AddFriend(context.Background(), identity("zzz", "zoe@example.com"), "al@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, friendships.edges, 1)
	assert.Equal(t, "aaa", friendships.edges[0].Person1ID)
	assert.Equal(t, "zzz", friendships.edges[0].Person2ID)
}

func TestAddFriend_Idempotent(t *testing.T) {
	service, friendships, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")
	users.add("bbb", "bea@example.com", "Bea")

	_, created, err := service.AddFriend(context.Background(), identity("aaa", "al@example.com"), "bea@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	// Adding from the other side targets the same canonical edge.
	_, created, err = service.AddFriend(context.Background(), identity("bbb", "bea@example.com"), "al@example.com")
	require.NoError(t, err)
	assert.False(t, created)

	assert.Len(t, friendships.edges, 1)
}

func TestAddFriend_SelfRejected(t *testing.T) {
	service, friendships, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")

	_, _, err := service.AddFriend(context.Background(), identity("aaa", "al@example.com"), "al@example.com")
	requireStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, friendships.edges)
}

func TestAddFriend_UnknownEmail(t *testing.T) {
	service, _, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")

	_, _, err := service.AddFriend(context.Background(), identity("aaa", "al@example.com"), "nobody@example.com")
	requireStatus(t, err, http.StatusNotFound)
}

func TestRemoveFriend_EitherDirection(t *testing.T) {
	service, friendships, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")
	users.add("bbb", "bea@example.com", "Bea")

	_, _, err := service.AddFriend(context.Background(), identity("aaa", "al@example.com"), "bea@example.com")
	require.NoError(t, err)

	// Removal from the side that is not the canonical first id must
	// still find the edge.
	require.NoError(t, service.RemoveFriend(context.Background(), "bbb", "aaa"))
	assert.Empty(t, friendships.edges)

	// Removing again reports not found.
	err = service.RemoveFriend(context.Background(), "aaa", "bbb")
	requireStatus(t, err, http.StatusNotFound)
}

func TestListFriends_ResolvesIdentities(t *testing.T) {
	service, _, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")
	users.add("bbb", "bea@example.com", "")
	users.add("ccc", "cam@example.com", "Cam")

	_, _, err := service.AddFriend(context.Background(), identity("aaa", "al@example.com"), "bea@example.com")
	require.NoError(t, err)
	_, _, err = service.AddFriend(context.Background(), identity("ccc", "cam@example.com"), "al@example.com")
	require.NoError(t, err)

	friends, err := service.ListFriends(context.Background(), "aaa")
	require.NoError(t, err)
	require.Len(t, friends, 2)

	assert.Equal(t, "bbb", friends[0].FriendID)
	assert.Equal(t, "bea@example.com", friends[0].FriendEmail)
	// No stored name falls back to the email local part, capitalized.
	assert.Equal(t, "Bea", friends[0].FriendName)
	assert.False(t, friends[0].Since.IsZero())

	assert.Equal(t, "ccc", friends[1].FriendID)
	assert.Equal(t, "Cam", friends[1].FriendName)
}

func TestListFriends_SkipsUnknownIdentities(t *testing.T) {
	service, friendships, users := newFriendService()
	users.add("aaa", "al@example.com", "Al")

	_, _, err := friendships.Add(context.Background(), "aaa", "ghost")
	require.NoError(t, err)

	friends, err := service.ListFriends(context.Background(), "aaa")
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, status, apiErr.Status)
}
