package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Friendship is an undirected edge between two users. Rows are always
// stored in canonical order (person_1_id < person_2_id) so the edge is
// unique regardless of who added whom.
type Friendship struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Person1ID string             `bson:"person_1_id" json:"person_1_id"`
	Person2ID string             `bson:"person_2_id" json:"person_2_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Other returns the endpoint of the edge that is not userID.
func (f *Friendship) Other(userID string) string {
	if f.Person1ID == userID {
		return f.Person2ID
	}
	return f.Person1ID
}

// Friend is one entry in a user's friend list.
type Friend struct {
	FriendID    string    `json:"friend_id"`
	FriendEmail string    `json:"friend_email"`
	FriendName  string    `json:"friend_name"`
	Since       time.Time `json:"friendship_created"`
}
