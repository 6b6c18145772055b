package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Raptors65/hack404/internal/services"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
)

// ReviewHandler manages HTTP endpoints related to place ratings.
type ReviewHandler struct {
	Service *services.ReviewService
}

// NewReviewHandler initializes a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: service}
}

// RatePlaceHandler upserts the authenticated user's rating of a place.
func (h *ReviewHandler) RatePlaceHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	var input services.RatePlaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode rate place request")
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	review, action, err := h.Service.RatePlace(r.Context(), identity.UserID, &input)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to rate place for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if action == "created" {
		status = http.StatusCreated
	}

	logger.Log.Infof("User %s %s rating for place %s", identity.UserID, action, input.PlaceID)
	RespondWithJSON(w, status, map[string]any{
		"message": "Rating " + action + " successfully",
		"action":  action,
		"review":  review,
	})
}

// GetUserRatingHandler returns the authenticated user's rating of a place,
// or has_rating=false when they have not rated it.
func (h *ReviewHandler) GetUserRatingHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	placeID := r.URL.Query().Get("place_id")
	if placeID == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing place_id", http.StatusBadRequest))
		return
	}

	review, err := h.Service.GetUserRating(r.Context(), identity.UserID, placeID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch rating for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	if review == nil {
		RespondWithJSON(w, http.StatusOK, map[string]any{"has_rating": false})
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"has_rating": true,
		"review":     review,
	})
}

// GetReviewsHandler returns all reviews for a place. Public endpoint.
func (h *ReviewHandler) GetReviewsHandler(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")
	if placeID == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing place_id", http.StatusBadRequest))
		return
	}

	reviews, err := h.Service.GetPlaceReviews(r.Context(), placeID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch reviews for place %s", placeID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"reviews": reviews,
	})
}

// GetReviewedPlacesHandler returns the authenticated user's reviews that
// carry coordinates, for map rendering.
func (h *ReviewHandler) GetReviewedPlacesHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	reviews, err := h.Service.GetReviewedPlaces(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch reviewed places for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"places": reviews,
	})
}
