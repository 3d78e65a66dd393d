package handlers

import (
	"fmt"
	"net/http"

	"mailtriage/internal/database"
	"mailtriage/internal/models"

	"github.com/labstack/echo/v4"
)

// ListPromptsHandler returns all stored prompt templates, newest first
func ListPromptsHandler(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !store.Ready() {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Database connection not available",
			})
		}

		templates, err := store.ListPrompts(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to list prompts: %v", err),
			})
		}

		return c.JSON(http.StatusOK, templates)
	}
}

// CreatePromptHandler creates a new prompt template. Name and content are
// required; the kind tag may be empty for untyped templates.
func CreatePromptHandler(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !store.Ready() {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Database connection not available",
			})
		}

		var req models.CreatePromptRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if req.Name == "" || req.Content == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "name and content required",
			})
		}

		template, err := store.CreatePrompt(c.Request().Context(), req.Name, req.Kind, req.Content)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to create prompt: %v", err),
			})
		}

		return c.JSON(http.StatusCreated, template)
	}
}
