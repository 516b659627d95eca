package models

import "time"

// User mirrors the identity record held by the external auth provider.
// The ID is the provider's UUID; rows are created on the first verified
// sync call and never deleted.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
