package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mailtriage/internal/database"
	"mailtriage/internal/models"

	"github.com/labstack/echo/v4"
)

// ListDraftsHandler returns all saved drafts, newest first
func ListDraftsHandler(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !store.Ready() {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Database connection not available",
			})
		}

		drafts, err := store.ListDrafts(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to list drafts: %v", err),
			})
		}

		return c.JSON(http.StatusOK, drafts)
	}
}

// CreateDraftHandler saves a reply draft. Body is required; subject and meta
// are optional, meta being opaque JSON stored verbatim.
func CreateDraftHandler(store *database.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !store.Ready() {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Database connection not available",
			})
		}

		var req models.CreateDraftRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if req.Body == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "draft body is required",
			})
		}

		var subject *string
		if req.Subject != "" {
			subject = &req.Subject
		}

		var metaJSON *string
		if len(req.Meta) > 0 && string(req.Meta) != "null" && json.Valid(req.Meta) {
			encoded := string(req.Meta)
			metaJSON = &encoded
		}

		draft, err := store.CreateDraft(c.Request().Context(), subject, req.Body, metaJSON)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to create draft: %v", err),
			})
		}

		return c.JSON(http.StatusCreated, draft)
	}
}
