// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched;
// touched fields are normalized the same way as at registration.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// --- Output DTOs ---
// None of these ever carries the password hash.

// AuthOutput is returned by Register and Login.
type AuthOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

// MeOutput is returned by GetMe.
type MeOutput struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}

// UserSummary is one row of the ListUsers result.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserOutput is the outward representation of a full user record.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// DeleteOutput is returned by DeleteUser.
type DeleteOutput struct {
	Message string `json:"message"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*MeOutput, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*UserOutput, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*DeleteOutput, error)
}
