package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Raptors65/hack404/internal/places"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
)

const defaultSearchRadius = 5000

// PlaceHandler exposes the places gateway as passthrough endpoints.
type PlaceHandler struct {
	Gateway places.Gateway
}

// NewPlaceHandler initializes a new PlaceHandler.
func NewPlaceHandler(gateway places.Gateway) *PlaceHandler {
	return &PlaceHandler{Gateway: gateway}
}

// GetAttractionsHandler returns tourist attractions near a coordinate.
func (h *PlaceHandler) GetAttractionsHandler(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing or invalid lat", http.StatusBadRequest))
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing or invalid lng", http.StatusBadRequest))
		return
	}

	radius := float64(defaultSearchRadius)
	if radiusStr := r.URL.Query().Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			middleware.WriteError(w, apierror.New("INVALID_INPUT", "Invalid radius", http.StatusBadRequest))
			return
		}
	}
	if radius <= 0 || radius > places.MaxRadiusMeters {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Radius must be between 1 and 50000 meters", http.StatusBadRequest))
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Coordinates out of range", http.StatusBadRequest))
		return
	}

	placeType := r.URL.Query().Get("type")
	if placeType == "" {
		placeType = "tourist_attraction"
	}

	attractions, err := h.Gateway.NearbySearch(r.Context(), lat, lng, radius, placeType)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch nearby attractions")
		middleware.WriteError(w, apierror.Wrap(err, "UPSTREAM_ERROR", "Failed to fetch attractions", http.StatusInternalServerError))
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"attractions": attractions,
		"count":       len(attractions),
	})
}

// GetAttractionDetailsHandler returns the detailed record for one place.
func (h *PlaceHandler) GetAttractionDetailsHandler(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")
	if placeID == "" {
		middleware.WriteError(w, apierror.New("INVALID_INPUT", "Missing place_id", http.StatusBadRequest))
		return
	}

	details, err := h.Gateway.Details(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, places.ErrNoResults) {
			middleware.WriteError(w, apierror.New("NOT_FOUND", "Place not found", http.StatusNotFound))
			return
		}
		logger.Log.WithError(err).Errorf("Failed to fetch details for place %s", placeID)
		middleware.WriteError(w, apierror.Wrap(err, "UPSTREAM_ERROR", "Failed to fetch place details", http.StatusInternalServerError))
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"attraction": details,
	})
}
