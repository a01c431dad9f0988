// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"accounts/config"
	"accounts/internal/domain/service"
)

// minCost is the lowest work factor accepted for stored credentials.
const minCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor
// comes from configuration and is never allowed below minCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return newBcryptHasherWithCost(cost)
}

func newBcryptHasherWithCost(cost int) *bcryptHasher {
	if cost < minCost {
		cost = minCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt embeds a fresh random salt and the cost parameters in the output.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash using bcrypt's
// constant-time comparison. A malformed stored hash simply yields false.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
