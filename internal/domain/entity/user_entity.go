package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// UpdatedAt is nil until the record has been updated at least once.
//
// In a real-world app, prefer value objects for Email, etc.
type User struct {
	ID        string
	Email     string
	FullName  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
