package services

import (
	"context"
	"time"

	"github.com/Raptors65/hack404/internal/models"
)

// Store interfaces abstract the repositories so services can be tested
// with in-memory fakes. The mongo-backed implementations live in
// internal/repository.

type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

type FriendshipStore interface {
	Add(ctx context.Context, person1ID, person2ID string) (*models.Friendship, bool, error)
	Remove(ctx context.Context, person1ID, person2ID string) error
	ListByUser(ctx context.Context, userID string) ([]models.Friendship, error)
}

type ReviewStore interface {
	Upsert(ctx context.Context, review *models.Review) (*models.Review, bool, error)
	GetByUserAndPlace(ctx context.Context, userID, placeID string) (*models.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]models.Review, error)
	ListByUserWithCoords(ctx context.Context, userID string) ([]models.Review, error)
	ListRecentByUsers(ctx context.Context, userIDs []string, since time.Time) ([]models.Review, error)
	ListLikedByUsers(ctx context.Context, placeID string, userIDs []string, minRating int) ([]models.Review, error)
}

type TripStore interface {
	GetActive(ctx context.Context, userID string) (*models.Trip, error)
	CloseActive(ctx context.Context, userID string, endDate time.Time) (int64, error)
	Insert(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	ListPastByUser(ctx context.Context, userID string) ([]models.Trip, error)
	ListCompletedByUsers(ctx context.Context, userIDs []string, since time.Time) ([]models.Trip, error)
}
