// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
)

// defaultTokenTTL is used when no lifetime is configured.
const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Process-wide signing key, injected at construction.
	tokenTTL time.Duration // Lifetime of issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed token for the given user. The token carries only
// the subject id and the issue/expiry timestamps.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	return s.issueWithTTL(userID, s.tokenTTL)
}

func (s *jwtService) issueWithTTL(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiration of a token string and returns
// the subject user id. Expiry and all other failures map to distinct
// domain errors so the caller layer can signal them separately.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
		}

		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token")
	}
	if !token.Valid {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject in token")
	}

	return userID, nil
}
