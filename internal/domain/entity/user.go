// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns tasks. Username and email are globally unique.
type User struct {
	ID           uint      // Numeric identifier, assigned by the store.
	Username     string    // Unique login name; immutable after registration.
	Email        string    // Unique contact email; mutable via the profile endpoint.
	PasswordHash string    // Encoded salt+digest record, never exposed outside the auth flow.
	FirstName    string
	LastName     string
	CreatedAt    time.Time // Timestamp of registration, UTC.
}
