package triage

import (
	"context"
	"fmt"

	"mailtriage/internal/llm"
	"mailtriage/internal/models"

	"github.com/rs/zerolog"
)

const replyMaxTokens = 800

// defaultAgentTemplate governs agent calls that supply no template of their
// own. The agent workflow is caller-driven and never consults the template
// store.
const defaultAgentTemplate = "You are an assistant that helps draft responses and summarize emails. Keep replies short and professional."

const defaultInstruction = "Please perform the task."

// Agent runs the free-form drafting workflow
type Agent struct {
	gateway llm.Gateway
	logger  zerolog.Logger
}

// NewAgent creates an agent with explicit dependencies
func NewAgent(gateway llm.Gateway, logger zerolog.Logger) *Agent {
	return &Agent{gateway: gateway, logger: logger}
}

// Draft builds one combined prompt (template, then email body, then
// instruction, each under a labeled section) and returns the gateway's reply
// verbatim. Persisting the reply as a draft is the caller's decision, not
// this workflow's.
func (a *Agent) Draft(ctx context.Context, email *models.InboundEmail, templateOverride, instruction string) (string, error) {
	if email == nil || email.Body == "" {
		return "", ErrMissingEmailBody
	}

	template := templateOverride
	if template == "" {
		template = defaultAgentTemplate
	}
	if instruction == "" {
		instruction = defaultInstruction
	}

	prompt := fmt.Sprintf("%s\n\nEmail:\n%s\n\nUser instruction:\n%s", template, email.Body, instruction)

	return a.gateway.Invoke(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, replyMaxTokens), nil
}
