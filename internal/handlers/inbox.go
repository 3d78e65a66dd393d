package handlers

import (
	"fmt"
	"net/http"

	"mailtriage/internal/inbox"
	"mailtriage/internal/models"

	"github.com/labstack/echo/v4"
)

// InboxHandler serves the mock inbox
func InboxHandler(loader *inbox.Loader) echo.HandlerFunc {
	return func(c echo.Context) error {
		emails, err := loader.Load()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Mock inbox unavailable: %v", err),
			})
		}

		return c.JSON(http.StatusOK, emails)
	}
}
