package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Raptors65/hack404/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the MongoDB connection and ensures the indexes
// that back the application's uniqueness invariants.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique indexes the stores rely on instead of
// application-level check-then-act sequences:
//   - one friendship row per canonical (person_1_id, person_2_id) pair
//   - one review per (user_id, place_id)
//   - at most one active trip per user (partial index)
//   - one users row per provider id, with an email lookup index
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"friendships": {
			{
				Keys:    bson.D{{Key: "person_1_id", Value: 1}, {Key: "person_2_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"reviews": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "place_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "place_id", Value: 1}},
			},
		},
		"trips": {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_active": true}),
			},
		},
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %v", collection, err)
		}
	}
	return nil
}
