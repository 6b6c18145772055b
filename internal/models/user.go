package models

import "time"

// User mirrors an identity-provider account. The provider owns the record;
// this collection only caches id, email and display name for lookups.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	LastActiveAt time.Time `bson:"last_active_at" json:"last_active_at"`
}
