// Package models defines the persisted WorkProof entities. JSON field names
// are part of the storage format and must stay stable.
package models

import "time"

// User is an account record. Created at signup and never edited afterwards.
// Email is stored lowercased and is the identity key.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
