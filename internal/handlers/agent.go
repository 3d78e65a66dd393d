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

// AgentHandler runs the free-form drafting workflow. The reply is returned
// to the caller only; saving it as a draft is a separate request.
func AgentHandler(agent *triage.Agent, llmTimeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.AgentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), llmTimeout)
		defer cancel()

		reply, err := agent.Draft(ctx, req.Email, req.PromptTemplate, req.UserInstruction)
		if err != nil {
			if errors.Is(err, triage.ErrMissingEmailBody) {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "email.body is required",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Drafting failed: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.AgentResponse{Reply: reply})
	}
}
