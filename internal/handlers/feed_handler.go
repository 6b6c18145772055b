package handlers

import (
	"net/http"

	"github.com/Raptors65/hack404/internal/services"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
)

// FeedHandler serves the social feed.
type FeedHandler struct {
	Service *services.FeedService
}

// NewFeedHandler initializes a new FeedHandler.
func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{Service: service}
}

// GetFeedHandler returns featured lists plus the authenticated user's
// friend activity.
func (h *FeedHandler) GetFeedHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	feed, err := h.Service.GetFeed(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to build feed for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, feed)
}
