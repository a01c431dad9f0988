// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned by Create when the email is already registered.
// The backing store enforces this with a unique constraint, so concurrent
// registrations with the same email cannot both succeed.
var ErrDuplicateEmail = errors.New("email already registered")

// UserUpdate carries the fields of a partial update. Nil fields are left
// untouched by UpdateByID.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// All operations are atomic at single-record granularity.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage. The ID and
	// timestamps are assigned by the store and written back to the entity.
	Create(ctx context.Context, user *entity.User) error

	// UpdateByID merges only the provided fields into an existing record and
	// returns the updated user, or ErrUserNotFound if the id is absent.
	UpdateByID(ctx context.Context, id uuid.UUID, update *UserUpdate) (*entity.User, error)

	// DeleteByID removes a record and reports whether one was removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ListAll returns every user in repository iteration order.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
