package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "accounts/internal/domain/errors"
	mockSvc "accounts/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().Verify("valid_token").Return(userID, nil)

	c, _ := newAuthTestContext("Bearer valid_token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get("userID"))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Verify("expired_token").
		Return(uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("token expired"))

	c, _ := newAuthTestContext("Bearer expired_token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)

	// The domain error passes through unchanged for the error handler to map
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}
