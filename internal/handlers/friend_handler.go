package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Raptors65/hack404/internal/services"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
)

// FriendHandler manages HTTP endpoints related to friendships.
type FriendHandler struct {
	Service *services.FriendService
}

// NewFriendHandler initializes a new FriendHandler.
func NewFriendHandler(service *services.FriendService) *FriendHandler {
	return &FriendHandler{Service: service}
}

// AddFriendHandler adds a friend by email for the authenticated user.
func (h *FriendHandler) AddFriendHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	var body struct {
		FriendEmail string `json:"friend_email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode add friend request")
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	if body.FriendEmail == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing friend_email", http.StatusBadRequest))
		return
	}

	friendship, created, err := h.Service.AddFriend(r.Context(), identity, body.FriendEmail)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to add friend for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	if !created {
		RespondWithJSON(w, http.StatusOK, map[string]any{
			"message":    "Friendship already exists",
			"friendship": friendship,
		})
		return
	}

	logger.Log.Infof("User %s added friend %s", identity.UserID, body.FriendEmail)
	RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message":    "Friend added successfully",
		"friendship": friendship,
	})
}

// RemoveFriendHandler removes a friendship for the authenticated user.
func (h *FriendHandler) RemoveFriendHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	var body struct {
		FriendID string `json:"friend_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode remove friend request")
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	if body.FriendID == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing friend_id", http.StatusBadRequest))
		return
	}

	if err := h.Service.RemoveFriend(r.Context(), identity.UserID, body.FriendID); err != nil {
		logger.Log.WithError(err).Warnf("Failed to remove friend %s for user %s", body.FriendID, identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	logger.Log.Infof("User %s removed friend %s", identity.UserID, body.FriendID)
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Friend removed successfully",
	})
}

// GetFriendsHandler returns the authenticated user's friend list.
func (h *FriendHandler) GetFriendsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	friends, err := h.Service.ListFriends(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch friends for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"friends": friends,
	})
}
