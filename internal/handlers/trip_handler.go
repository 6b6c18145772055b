package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Raptors65/hack404/internal/services"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
)

// TripHandler manages HTTP endpoints related to trips.
type TripHandler struct {
	Service               *services.TripService
	RecommendationService *services.RecommendationService
}

// NewTripHandler initializes a new TripHandler.
func NewTripHandler(service *services.TripService, recommendationService *services.RecommendationService) *TripHandler {
	return &TripHandler{
		Service:               service,
		RecommendationService: recommendationService,
	}
}

// CurrentTripHandler returns the authenticated user's active trip, if any.
func (h *TripHandler) CurrentTripHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	trip, err := h.Service.CurrentTrip(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch current trip for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	if trip == nil {
		RespondWithJSON(w, http.StatusOK, map[string]any{"has_active_trip": false})
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"has_active_trip": true,
		"trip":            trip,
	})
}

// StartTripHandler starts a new trip, closing any active one first.
func (h *TripHandler) StartTripHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	var body struct {
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode start trip request")
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest))
		return
	}
	defer r.Body.Close()

	trip, err := h.Service.StartTrip(r.Context(), identity.UserID, body.City, body.Country)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to start trip for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	logger.Log.Infof("User %s started trip to %s", identity.UserID, trip.City)
	RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": "Trip started successfully",
		"trip":    trip,
	})
}

// EndTripHandler ends the authenticated user's active trip.
func (h *TripHandler) EndTripHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	trip, err := h.Service.EndTrip(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to end trip for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	logger.Log.Infof("User %s ended trip to %s", identity.UserID, trip.City)
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Trip ended successfully",
		"trip":    trip,
	})
}

// PastTripsHandler returns the authenticated user's closed trips.
func (h *TripHandler) PastTripsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	trips, err := h.Service.PastTrips(r.Context(), identity.UserID)
	if err != nil {
		logger.Log.WithError(err).Errorf("Failed to fetch past trips for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"trips": trips,
	})
}

// RecommendationsHandler returns friend-aware recommendations for a city.
func (h *TripHandler) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetUserFromContext(r.Context())
	if identity == nil {
		middleware.WriteError(w, apierror.ErrUnauthorized)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing city parameter", http.StatusBadRequest))
		return
	}

	response, err := h.RecommendationService.GetRecommendations(r.Context(), identity.UserID, city)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to build recommendations for user %s", identity.UserID)
		middleware.WriteError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, response)
}
