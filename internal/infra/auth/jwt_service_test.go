package auth

import (
	"testing"
	"time"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, svc)

	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Verify the token and check the subject round-trips
	gotID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	// Issue a token that expired one minute ago
	token, err := jwtSvc.issueWithTTL(uuid.New(), -time.Minute)
	require.NoError(t, err)

	gotID, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, gotID)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	gotID, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, gotID)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	// Tokens signed with "none" must never verify
	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidSubject(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestJWTConfig(secret))
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestJWTConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, time.Hour, jwtSvc.tokenTTL)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour, jwtSvc.tokenTTL)
}
