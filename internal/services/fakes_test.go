package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the store interfaces. Each mirrors the filtering
// its mongo counterpart performs so service tests exercise the same
// query semantics.

type fakeUserStore struct {
	users   map[string]models.User
	listErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) add(id, email, name string) {
	s.users[id] = models.User{ID: id, Email: email, Name: name}
}

func (s *fakeUserStore) Upsert(_ context.Context, user *models.User) error {
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetByIDs(_ context.Context, ids []string) ([]models.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []models.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

type fakeFriendshipStore struct {
	edges   []models.Friendship
	listErr error
}

func (s *fakeFriendshipStore) Add(_ context.Context, person1ID, person2ID string) (*models.Friendship, bool, error) {
	for i := range s.edges {
		if s.edges[i].Person1ID == person1ID && s.edges[i].Person2ID == person2ID {
			return &s.edges[i], false, nil
		}
	}
	edge := models.Friendship{
		ID:        primitive.NewObjectID(),
		Person1ID: person1ID,
		Person2ID: person2ID,
		CreatedAt: time.Now(),
	}
	s.edges = append(s.edges, edge)
	return &edge, true, nil
}

func (s *fakeFriendshipStore) Remove(_ context.Context, person1ID, person2ID string) error {
	for i := range s.edges {
		if s.edges[i].Person1ID == person1ID && s.edges[i].Person2ID == person2ID {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeFriendshipStore) ListByUser(_ context.Context, userID string) ([]models.Friendship, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []models.Friendship
	for i := range s.edges {
		if s.edges[i].Person1ID == userID || s.edges[i].Person2ID == userID {
			result = append(result, s.edges[i])
		}
	}
	return result, nil
}

type fakeReviewStore struct {
	reviews      []models.Review
	nextID       int
	upsertErr    error
	listLikedErr error
}

func (s *fakeReviewStore) Upsert(_ context.Context, review *models.Review) (*models.Review, bool, error) {
	if s.upsertErr != nil {
		return nil, false, s.upsertErr
	}
	now := time.Now()
	for i := range s.reviews {
		if s.reviews[i].UserID == review.UserID && s.reviews[i].PlaceID == review.PlaceID {
			s.reviews[i].Rating = review.Rating
			s.reviews[i].Comment = review.Comment
			s.reviews[i].PlaceName = review.PlaceName
			if review.HasCoords() {
				s.reviews[i].Latitude = review.Latitude
				s.reviews[i].Longitude = review.Longitude
			}
			s.reviews[i].UpdatedAt = now
			return &s.reviews[i], false, nil
		}
	}
	s.nextID++
	stored := *review
	stored.ReviewID = fmt.Sprintf("review-%d", s.nextID)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.reviews = append(s.reviews, stored)
	return &s.reviews[len(s.reviews)-1], true, nil
}

func (s *fakeReviewStore) GetByUserAndPlace(_ context.Context, userID, placeID string) (*models.Review, error) {
	for i := range s.reviews {
		if s.reviews[i].UserID == userID && s.reviews[i].PlaceID == placeID {
			return &s.reviews[i], nil
		}
	}
	return nil, nil
}

func (s *fakeReviewStore) ListByPlace(_ context.Context, placeID string) ([]models.Review, error) {
	var result []models.Review
	for i := range s.reviews {
		if s.reviews[i].PlaceID == placeID {
			result = append(result, s.reviews[i])
		}
	}
	return result, nil
}

func (s *fakeReviewStore) ListByUserWithCoords(_ context.Context, userID string) ([]models.Review, error) {
	var result []models.Review
	for i := range s.reviews {
		if s.reviews[i].UserID == userID && s.reviews[i].HasCoords() {
			result = append(result, s.reviews[i])
		}
	}
	return result, nil
}

func (s *fakeReviewStore) ListRecentByUsers(_ context.Context, userIDs []string, since time.Time) ([]models.Review, error) {
	ids := toSet(userIDs)
	var result []models.Review
	for i := range s.reviews {
		if ids[s.reviews[i].UserID] && !s.reviews[i].CreatedAt.Before(since) {
			result = append(result, s.reviews[i])
		}
	}
	return result, nil
}

func (s *fakeReviewStore) ListLikedByUsers(_ context.Context, placeID string, userIDs []string, minRating int) ([]models.Review, error) {
	if s.listLikedErr != nil {
		return nil, s.listLikedErr
	}
	ids := toSet(userIDs)
	var result []models.Review
	for i := range s.reviews {
		r := s.reviews[i]
		if r.PlaceID == placeID && ids[r.UserID] && r.Rating >= minRating {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeTripStore struct {
	trips []models.Trip
}

func (s *fakeTripStore) GetActive(_ context.Context, userID string) (*models.Trip, error) {
	for i := range s.trips {
		if s.trips[i].UserID == userID && s.trips[i].IsActive {
			return &s.trips[i], nil
		}
	}
	return nil, nil
}

func (s *fakeTripStore) CloseActive(_ context.Context, userID string, endDate time.Time) (int64, error) {
	var closed int64
	for i := range s.trips {
		if s.trips[i].UserID == userID && s.trips[i].IsActive {
			s.trips[i].IsActive = false
			end := endDate
			s.trips[i].EndDate = &end
			closed++
		}
	}
	return closed, nil
}

func (s *fakeTripStore) Insert(_ context.Context, trip *models.Trip) (*models.Trip, error) {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	s.trips = append(s.trips, *trip)
	return trip, nil
}

func (s *fakeTripStore) ListPastByUser(_ context.Context, userID string) ([]models.Trip, error) {
	var result []models.Trip
	for i := range s.trips {
		if s.trips[i].UserID == userID && !s.trips[i].IsActive {
			result = append(result, s.trips[i])
		}
	}
	return result, nil
}

func (s *fakeTripStore) ListCompletedByUsers(_ context.Context, userIDs []string, since time.Time) ([]models.Trip, error) {
	ids := toSet(userIDs)
	var result []models.Trip
	for i := range s.trips {
		t := s.trips[i]
		if ids[t.UserID] && !t.IsActive && t.EndDate != nil && !t.EndDate.Before(since) {
			result = append(result, t)
		}
	}
	return result, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
