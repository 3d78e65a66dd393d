package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mailtriage/internal/models"
	"mailtriage/internal/triage"

	"github.com/labstack/echo/v4"
)

// ProcessHandler runs the categorize + extract-actions workflow for one
// email. The response always carries the full shape: under LLM failure the
// category and raw actions degrade to diagnostic text, never to an error.
func ProcessHandler(processor *triage.Processor, llmTimeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ProcessRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), llmTimeout)
		defer cancel()

		result, err := processor.Process(ctx, req.Email)
		if err != nil {
			if errors.Is(err, triage.ErrMissingEmailBody) {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "email.body is required",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Processing failed: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.ProcessResponse{
			Category:    result.Category,
			ActionsRaw:  result.ActionsRaw,
			ActionsJSON: result.Actions,
		})
	}
}
