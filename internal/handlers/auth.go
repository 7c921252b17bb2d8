package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogvote-api/internal/models"
	"blogvote-api/internal/repositories"
	"blogvote-api/pkg/security"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokens         *security.TokenService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokens *security.TokenService) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokens:         tokens,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

// Login authenticates form credentials and issues a bearer token. The
// form field is named "username" but carries the email. Unknown user
// and wrong password return the identical 403 so the response never
// reveals which half failed.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid Credentials")
	}

	user, err := h.userRepository.GetUserByEmail(email)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid Credentials")
	}

	ok, err := security.VerifyPassword(password, user.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify credentials")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid Credentials")
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
