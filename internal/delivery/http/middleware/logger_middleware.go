package middleware

import (
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestScopeMiddleware attaches a request id and a request-scoped logger
// to every inbound request so downstream layers can correlate log lines.
type RequestScopeMiddleware struct {
	logger *slog.Logger
}

// NewRequestScopeMiddleware creates a new request scope middleware
func NewRequestScopeMiddleware(logger *slog.Logger) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{logger: logger}
}

// Handle injects the request id and logger into both the echo and request contexts.
func (m *RequestScopeMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
