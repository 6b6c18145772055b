package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatePlace_CreateThenUpdate(t *testing.T) {
	reviews := &fakeReviewStore{}
	service := NewReviewService(reviews)

	stored, action, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID:   "place-1",
		PlaceName: "Eiffel Tower",
		Rating:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, "created", action)
	assert.Equal(t, 5, stored.Rating)
	assert.NotEmpty(t, stored.ReviewID)

	stored, action, err = service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID: "place-1",
		Rating:  9,
		Comment: "Better the second time",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", action)
	assert.Equal(t, 9, stored.Rating)

	// Exactly one row exists for the (user, place) pair.
	require.Len(t, reviews.reviews, 1)
	assert.Equal(t, 9, reviews.reviews[0].Rating)
	assert.Equal(t, "Better the second time", reviews.reviews[0].Comment)
}

func TestRatePlace_RatingOutOfRange(t *testing.T) {
	reviews := &fakeReviewStore{}
	service := NewReviewService(reviews)

	for _, rating := range []int{0, -3, 11, 100} {
		_, _, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
			PlaceID: "place-1",
			Rating:  rating,
		})
		requireStatus(t, err, http.StatusBadRequest)
	}

	// No mutation happened.
	assert.Empty(t, reviews.reviews)
}

func TestRatePlace_MissingPlaceID(t *testing.T) {
	service := NewReviewService(&fakeReviewStore{})

	_, _, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{Rating: 5})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestRatePlace_CoordinateValidation(t *testing.T) {
	reviews := &fakeReviewStore{}
	service := NewReviewService(reviews)

	lat, lng := 95.0, 10.0
	_, _, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID:  "place-1",
		Rating:   5,
		Latitude: &lat, Longitude: &lng,
	})
	requireStatus(t, err, http.StatusBadRequest)

	// Latitude without longitude is rejected.
	lat = 45.0
	_, _, err = service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID:  "place-1",
		Rating:   5,
		Latitude: &lat,
	})
	requireStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, reviews.reviews)

	lng = -73.5
	stored, action, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID:  "place-1",
		Rating:   5,
		Latitude: &lat, Longitude: &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, "created", action)
	assert.True(t, stored.HasCoords())
}

func TestGetUserRating_None(t *testing.T) {
	service := NewReviewService(&fakeReviewStore{})

	review, err := service.GetUserRating(context.Background(), "user-1", "place-1")
	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestGetReviewedPlaces_OnlyWithCoords(t *testing.T) {
	reviews := &fakeReviewStore{}
	service := NewReviewService(reviews)

	lat, lng := 48.86, 2.35
	_, _, err := service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID: "mapped", Rating: 8, Latitude: &lat, Longitude: &lng,
	})
	require.NoError(t, err)
	_, _, err = service.RatePlace(context.Background(), "user-1", &RatePlaceInput{
		PlaceID: "unmapped", Rating: 6,
	})
	require.NoError(t, err)

	places, err := service.GetReviewedPlaces(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "mapped", places[0].PlaceID)
}
