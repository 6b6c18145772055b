package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one user's rating of one place. At most one review exists per
// (user_id, place_id); repeated submissions update the existing row.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ReviewID  string             `bson:"review_id" json:"review_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	PlaceID   string             `bson:"place_id" json:"place_id"`
	PlaceName string             `bson:"place_name,omitempty" json:"place_name,omitempty"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Latitude  *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasCoords reports whether the review carries a map location.
func (r *Review) HasCoords() bool {
	return r.Latitude != nil && r.Longitude != nil
}
