package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/pkg/apierror"
)

// TripService handles business logic for travel sessions.
type TripService struct {
	trips TripStore
}

// NewTripService creates a new TripService.
func NewTripService(trips TripStore) *TripService {
	return &TripService{trips: trips}
}

// CurrentTrip returns the user's active trip, or nil when none.
func (s *TripService) CurrentTrip(ctx context.Context, userID string) (*models.Trip, error) {
	return s.trips.GetActive(ctx, userID)
}

// StartTrip closes any active trip before inserting the new one, keeping
// at most one trip active per user. The partial unique index on the trips
// collection backs this up against concurrent starts.
func (s *TripService) StartTrip(ctx context.Context, userID, city, country string) (*models.Trip, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apierror.New("INVALID_INPUT", "Missing city", http.StatusBadRequest)
	}

	now := time.Now()
	if _, err := s.trips.CloseActive(ctx, userID, now); err != nil {
		return nil, err
	}

	return s.trips.Insert(ctx, &models.Trip{
		UserID:    userID,
		City:      city,
		Country:   strings.TrimSpace(country),
		StartDate: now,
		IsActive:  true,
	})
}

// EndTrip closes the active trip, stamping its end time. Fails with
// NotFound when no trip is active.
func (s *TripService) EndTrip(ctx context.Context, userID string) (*models.Trip, error) {
	trip, err := s.trips.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apierror.New("NOT_FOUND", "No active trip found", http.StatusNotFound)
	}

	now := time.Now()
	if _, err := s.trips.CloseActive(ctx, userID, now); err != nil {
		return nil, err
	}

	trip.IsActive = false
	trip.EndDate = &now
	return trip, nil
}

// PastTrips returns the user's closed trips, most recent first.
func (s *TripService) PastTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	return s.trips.ListPastByUser(ctx, userID)
}
