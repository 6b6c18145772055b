package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a user's travel session. At most one trip per user is active;
// starting a new one closes the previous.
type Trip struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	City      string             `bson:"city" json:"city"`
	Country   string             `bson:"country,omitempty" json:"country,omitempty"`
	StartDate time.Time          `bson:"start_date" json:"start_date"`
	EndDate   *time.Time         `bson:"end_date,omitempty" json:"end_date,omitempty"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
