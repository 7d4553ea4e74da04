package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"fintrack/internal/backend"
	"fintrack/internal/errors"
	"fintrack/internal/handlers"
)

// BearerPassthrough extracts the opaque bearer credential from the incoming
// Authorization header and stores it in the request context for the backend
// client. The token is never inspected or parsed here: validating it is the
// finance backend's job, and this service only forwards it.
func BearerPassthrough() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			ctx := backend.WithToken(c.Request().Context(), strings.TrimSpace(parts[1]))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
