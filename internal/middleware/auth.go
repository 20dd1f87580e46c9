// Package middleware contains the HTTP middleware chain: opaque token
// authentication, redis-backed rate limiting and GET response caching.
package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-api/internal/repository"
)

// HashToken returns the SHA-256 hex digest under which a plain token
// is stored in the auth_tokens table.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenAuth returns an Echo middleware that requires a valid opaque
// token in the Authorization header.  The header value is the token
// itself, without a Bearer prefix.  Missing or unknown tokens are
// rejected with 401.  No identity or role information is attached;
// the token only gates access.
func TokenAuth(tokens *repository.TokenRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"detail": "Invalid authorization header. No credentials provided.",
				})
			}
			err := tokens.Validate(c.Request().Context(), HashToken(raw))
			if errors.Is(err, repository.ErrTokenNotFound) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid token."})
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
			return next(c)
		}
	}
}
