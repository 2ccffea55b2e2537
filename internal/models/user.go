package models

import "time"

type User struct {
	Slug      string    `firestore:"slug"` // Primary key, normalized projection of Username
	Username  string    `firestore:"username"`
	CreatedAt time.Time `firestore:"created_at"`
	LastSeen  time.Time `firestore:"last_seen"`
}
