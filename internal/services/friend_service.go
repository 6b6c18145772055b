package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Raptors65/hack404/internal/auth"
	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/internal/repository"
	"github.com/Raptors65/hack404/pkg/apierror"
)

// FriendService handles business logic for managing friendships.
type FriendService struct {
	friendships FriendshipStore
	users       UserStore
}

// NewFriendService creates a new FriendService.
func NewFriendService(friendships FriendshipStore, users UserStore) *FriendService {
	return &FriendService{
		friendships: friendships,
		users:       users,
	}
}

// AddFriend resolves the friend's email to a user id and stores the
// canonical edge. Adding an existing friend succeeds without inserting a
// duplicate; the returned bool reports whether the edge was created.
func (s *FriendService) AddFriend(ctx context.Context, self *auth.Identity, friendEmail string) (*models.Friendship, bool, error) {
	if friendEmail == self.Email {
		return nil, false, apierror.New("INVALID_INPUT", "Cannot add yourself as a friend", http.StatusBadRequest)
	}

	friend, err := s.users.GetByEmail(ctx, friendEmail)
	if err != nil {
		return nil, false, err
	}
	if friend == nil {
		return nil, false, apierror.New("NOT_FOUND", fmt.Sprintf("User with email %s not found", friendEmail), http.StatusNotFound)
	}
	if friend.ID == self.UserID {
		return nil, false, apierror.New("INVALID_INPUT", "Cannot add yourself as a friend", http.StatusBadRequest)
	}

	person1, person2 := models.CanonicalPair(self.UserID, friend.ID)
	return s.friendships.Add(ctx, person1, person2)
}

// RemoveFriend deletes the edge between the caller and friendID.
func (s *FriendService) RemoveFriend(ctx context.Context, selfID, friendID string) error {
	person1, person2 := models.CanonicalPair(selfID, friendID)
	err := s.friendships.Remove(ctx, person1, person2)
	if err == repository.ErrNotFound {
		return apierror.New("NOT_FOUND", "Friend relationship not found", http.StatusNotFound)
	}
	return err
}

// ListFriends returns the caller's friends with their display identities,
// ordered by when the friendship was created. Identities are resolved in
// one batch query rather than per edge.
func (s *FriendService) ListFriends(ctx context.Context, selfID string) ([]models.Friend, error) {
	friendships, err := s.friendships.ListByUser(ctx, selfID)
	if err != nil {
		return nil, err
	}

	friendIDs := make([]string, 0, len(friendships))
	for i := range friendships {
		friendIDs = append(friendIDs, friendships[i].Other(selfID))
	}

	users, err := s.users.GetByIDs(ctx, friendIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	friends := make([]models.Friend, 0, len(friendships))
	for i := range friendships {
		friendID := friendships[i].Other(selfID)
		user, ok := byID[friendID]
		if !ok {
			// Edge references an identity we have never seen; skip it
			// rather than return a nameless entry.
			continue
		}
		friends = append(friends, models.Friend{
			FriendID:    friendID,
			FriendEmail: user.Email,
			FriendName:  DisplayName(user),
			Since:       friendships[i].CreatedAt,
		})
	}

	return friends, nil
}

// FriendIDs returns the ids of everyone the user is friends with.
func (s *FriendService) FriendIDs(ctx context.Context, selfID string) ([]string, error) {
	friendships, err := s.friendships.ListByUser(ctx, selfID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(friendships))
	for i := range friendships {
		ids = append(ids, friendships[i].Other(selfID))
	}
	return ids, nil
}
