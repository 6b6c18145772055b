package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository stores per-user, per-place ratings. A unique index on
// (user_id, place_id) guarantees at most one review per pair.
type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Upsert writes the review for (user, place) as one atomic statement:
// an existing row is updated in place, otherwise a new row is inserted
// with a fresh review id. Returns the stored row and whether it was
// created by this call.
func (r *ReviewRepository) Upsert(ctx context.Context, review *models.Review) (*models.Review, bool, error) {
	now := time.Now()
	newReviewID := uuid.NewString()

	set := bson.M{
		"rating":     review.Rating,
		"comment":    review.Comment,
		"place_name": review.PlaceName,
		"updated_at": now,
	}
	if review.HasCoords() {
		set["latitude"] = review.Latitude
		set["longitude"] = review.Longitude
	}

	var stored models.Review
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": review.UserID, "place_id": review.PlaceID},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"review_id":  newReviewID,
				"user_id":    review.UserID,
				"place_id":   review.PlaceID,
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert review: %v", err)
	}

	// The $setOnInsert review id only sticks when the row was inserted.
	created := stored.ReviewID == newReviewID
	return &stored, created, nil
}

// GetByUserAndPlace returns the user's review of a place, or (nil, nil)
// when they have not rated it.
func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "place_id": placeID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %v", err)
	}
	return &review, nil
}

// ListByPlace returns every review of a place, newest first.
func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]models.Review, error) {
	return r.list(ctx, bson.M{"place_id": placeID}, bson.D{{Key: "created_at", Value: -1}})
}

// ListByUserWithCoords returns the user's reviews that carry coordinates,
// for map rendering.
func (r *ReviewRepository) ListByUserWithCoords(ctx context.Context, userID string) ([]models.Review, error) {
	filter := bson.M{
		"user_id":   userID,
		"latitude":  bson.M{"$exists": true, "$ne": nil},
		"longitude": bson.M{"$exists": true, "$ne": nil},
	}
	return r.list(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

// ListRecentByUsers returns reviews created by any of the given users
// since the cutoff, newest first.
func (r *ReviewRepository) ListRecentByUsers(ctx context.Context, userIDs []string, since time.Time) ([]models.Review, error) {
	if len(userIDs) == 0 {
		return []models.Review{}, nil
	}
	filter := bson.M{
		"user_id":    bson.M{"$in": userIDs},
		"created_at": bson.M{"$gte": since},
	}
	return r.list(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

// ListLikedByUsers returns reviews of a place by any of the given users
// with rating at or above minRating.
func (r *ReviewRepository) ListLikedByUsers(ctx context.Context, placeID string, userIDs []string, minRating int) ([]models.Review, error) {
	if len(userIDs) == 0 {
		return []models.Review{}, nil
	}
	filter := bson.M{
		"place_id": placeID,
		"user_id":  bson.M{"$in": userIDs},
		"rating":   bson.M{"$gte": minRating},
	}
	return r.list(ctx, filter, bson.D{{Key: "rating", Value: -1}})
}

func (r *ReviewRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
