package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"blogvote-api/internal/models"
	"blogvote-api/internal/repositories"
	"blogvote-api/pkg/security"
)

// CurrentUserKey is the context key under which the authenticated user
// is stored for exactly one request.
const CurrentUserKey = "currentUser"

// JWTAuth verifies the Bearer token on each request and resolves it to
// a user row. Every failure is the same generic 401: a missing header,
// a bad or expired token, and a token whose user was deleted after
// issuance are indistinguishable to the caller. The middleware keeps no
// state across requests.
func JWTAuth(tokens *security.TokenService, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated()
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthenticated()
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return unauthenticated()
			}

			// Tokens are not revoked on user deletion; this lookup is
			// the enforcement point for deleted accounts.
			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				return unauthenticated()
			}

			c.Set(CurrentUserKey, user)

			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by JWTAuth for this request.
func CurrentUser(c echo.Context) *models.User {
	return c.Get(CurrentUserKey).(*models.User)
}

func unauthenticated() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
}
