// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing a registered account.
// PasswordHash is the one-way derived credential; it must never appear in
// any outward-facing representation.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the repository on creation.
	FirstName    string    // Display name, stored capitalized (first letter upper, rest lower).
	LastName     string    // Display name, stored capitalized.
	Email        string    // Login key, unique across all users, stored lowercase.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// FullName returns the user's display name as "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
