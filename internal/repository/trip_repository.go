package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository stores travel sessions. A partial unique index on
// user_id (where is_active is true) enforces the single-active-trip
// invariant at the storage layer.
type TripRepository struct {
	collection *mongo.Collection
}

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{
		collection: db.Collection("trips"),
	}
}

// GetActive returns the user's active trip, or (nil, nil) when none.
func (r *TripRepository) GetActive(ctx context.Context, userID string) (*models.Trip, error) {
	var trip models.Trip
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "is_active": true}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active trip: %v", err)
	}
	return &trip, nil
}

// CloseActive deactivates any active trip for the user, stamping the end
// time. Returns how many trips were closed.
func (r *TripRepository) CloseActive(ctx context.Context, userID string, endDate time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "end_date": endDate}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to close active trip: %v", err)
	}
	return result.ModifiedCount, nil
}

// Insert stores a new trip.
func (r *TripRepository) Insert(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	trip.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trip: %v", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	trip.ID = insertedID

	return trip, nil
}

// ListPastByUser returns the user's closed trips, most recent first.
func (r *TripRepository) ListPastByUser(ctx context.Context, userID string) ([]models.Trip, error) {
	filter := bson.M{"user_id": userID, "is_active": false}
	return r.list(ctx, filter, bson.D{{Key: "end_date", Value: -1}})
}

// ListCompletedByUsers returns trips by any of the given users that were
// completed since the cutoff.
func (r *TripRepository) ListCompletedByUsers(ctx context.Context, userIDs []string, since time.Time) ([]models.Trip, error) {
	if len(userIDs) == 0 {
		return []models.Trip{}, nil
	}
	filter := bson.M{
		"user_id":   bson.M{"$in": userIDs},
		"is_active": false,
		"end_date":  bson.M{"$gte": since},
	}
	return r.list(ctx, filter, bson.D{{Key: "end_date", Value: -1}})
}

func (r *TripRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Trip, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %v", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	for cursor.Next(ctx) {
		var trip models.Trip
		if err := cursor.Decode(&trip); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, nil
}
