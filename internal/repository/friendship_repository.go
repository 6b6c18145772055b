package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FriendshipRepository stores undirected friendship edges. Callers must
// pass ids in canonical order (models.CanonicalPair); a unique index on
// (person_1_id, person_2_id) makes the edge the source of truth.
type FriendshipRepository struct {
	collection *mongo.Collection
}

func NewFriendshipRepository(db *mongo.Database) *FriendshipRepository {
	return &FriendshipRepository{
		collection: db.Collection("friendships"),
	}
}

// Add inserts the edge if absent. The upsert is a single atomic statement,
// so concurrent adds of the same pair cannot produce duplicates. Returns
// the stored edge and whether this call created it.
func (r *FriendshipRepository) Add(ctx context.Context, person1ID, person2ID string) (*models.Friendship, bool, error) {
	filter := bson.M{"person_1_id": person1ID, "person_2_id": person2ID}

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{"$setOnInsert": bson.M{
			"person_1_id": person1ID,
			"person_2_id": person2ID,
			"created_at":  time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add friendship: %v", err)
	}

	var friendship models.Friendship
	if err := r.collection.FindOne(ctx, filter).Decode(&friendship); err != nil {
		return nil, false, fmt.Errorf("failed to load friendship: %v", err)
	}

	return &friendship, result.UpsertedCount > 0, nil
}

// Remove deletes the edge, reporting ErrNotFound when it does not exist.
func (r *FriendshipRepository) Remove(ctx context.Context, person1ID, person2ID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"person_1_id": person1ID,
		"person_2_id": person2ID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove friendship: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns every edge the user appears in, regardless of
// direction, oldest first.
func (r *FriendshipRepository) ListByUser(ctx context.Context, userID string) ([]models.Friendship, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"person_1_id": userID},
			{"person_2_id": userID},
		},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve friendships: %v", err)
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	for cursor.Next(ctx) {
		var friendship models.Friendship
		if err := cursor.Decode(&friendship); err != nil {
			return nil, err
		}
		friendships = append(friendships, friendship)
	}

	return friendships, nil
}
