package models

import "time"

const (
	ActivityTypeReview = "review"
	ActivityTypeTrip   = "trip"
)

// FriendActivity is a synthetic feed item built per request from a
// friend's recent reviews and completed trips. It is never persisted.
type FriendActivity struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`

	// Review fields
	PlaceID   string `json:"place_id,omitempty"`
	PlaceName string `json:"place_name,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Comment   string `json:"comment,omitempty"`

	// Trip fields
	City      string     `json:"city,omitempty"`
	Country   string     `json:"country,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// FeaturedList is a curated collection of places shown at the top of the
// feed. The set is static and not derived from user data.
type FeaturedList struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PlaceCount  int    `json:"place_count"`
}
