package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "blogvote-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
