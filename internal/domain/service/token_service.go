package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity tokens. This abstracts the token format (JWT)
// from the use cases and the delivery layer.
type TokenService interface {
	// Issue creates a signed token encoding the subject user id and an
	// expiration timestamp.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature validity and expiration and returns the
	// subject user id. Failures are the domain errors ErrTokenExpired and
	// ErrTokenInvalid, distinct from all other error kinds.
	Verify(tokenString string) (uuid.UUID, error)
}
