package services

import (
	"context"
	"net/http"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/go-playground/validator/v10"
)

// RatePlaceInput is the payload for rating a place.
type RatePlaceInput struct {
	PlaceID   string   `json:"place_id" validate:"required"`
	PlaceName string   `json:"place_name"`
	Rating    int      `json:"rating" validate:"required,min=1,max=10"`
	Comment   string   `json:"comment"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// ReviewService handles business logic for ratings.
type ReviewService struct {
	reviews  ReviewStore
	validate *validator.Validate
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		validate: validator.New(),
	}
}

// RatePlace upserts the caller's review of a place. The returned action
// is "created" for a first rating and "updated" thereafter.
func (s *ReviewService) RatePlace(ctx context.Context, userID string, input *RatePlaceInput) (*models.Review, string, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, "", apierror.New("INVALID_INPUT", "Rating must be an integer between 1 and 10 and coordinates must be valid", http.StatusBadRequest, err.Error())
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, "", apierror.New("INVALID_INPUT", "Latitude and longitude must be provided together", http.StatusBadRequest)
	}

	review := &models.Review{
		UserID:    userID,
		PlaceID:   input.PlaceID,
		PlaceName: input.PlaceName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	stored, created, err := s.reviews.Upsert(ctx, review)
	if err != nil {
		return nil, "", err
	}

	action := "updated"
	if created {
		action = "created"
	}
	return stored, action, nil
}

// GetUserRating returns the caller's review of a place, or nil when they
// have not rated it. An absent rating is not an error.
func (s *ReviewService) GetUserRating(ctx context.Context, userID, placeID string) (*models.Review, error) {
	return s.reviews.GetByUserAndPlace(ctx, userID, placeID)
}

// GetPlaceReviews returns every review of a place. Reviews are public.
func (s *ReviewService) GetPlaceReviews(ctx context.Context, placeID string) ([]models.Review, error) {
	return s.reviews.ListByPlace(ctx, placeID)
}

// GetReviewedPlaces returns the caller's reviews that carry coordinates,
// for map rendering.
func (s *ReviewService) GetReviewedPlaces(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviews.ListByUserWithCoords(ctx, userID)
}
