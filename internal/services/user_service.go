package services

import (
	"context"

	"github.com/Raptors65/hack404/internal/auth"
	"github.com/Raptors65/hack404/internal/models"
)

// UserService maintains the local mirror of identity-provider accounts.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// SyncIdentity refreshes the mirrored row for an authenticated identity.
func (s *UserService) SyncIdentity(ctx context.Context, identity *auth.Identity) error {
	return s.users.Upsert(ctx, &models.User{
		ID:    identity.UserID,
		Email: identity.Email,
		Name:  identity.Name,
	})
}

// DisplayName returns the stored name for a user, falling back to the
// capitalized local part of their email.
func DisplayName(user *models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return auth.NameFromEmail(user.Email)
}
