package models

// FriendLike records one friend who rated a place 8 or higher.
type FriendLike struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
}

// Recommendation is a nearby attraction enriched with a coarse category
// and the caller's friends who liked it.
type Recommendation struct {
	PlaceID         string       `json:"place_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Rating          float64      `json:"rating"`
	ImageURL        string       `json:"image_url,omitempty"`
	FriendsWhoLiked []FriendLike `json:"friends_who_liked,omitempty"`
	FriendIndicator string       `json:"friend_indicator,omitempty"`
}
