// Package llm provides a uniform gateway to the chat-completion provider.
// Every failure mode is normalized into the returned text: a missing
// credential yields a fixed disabled-mode string and call failures yield an
// error-prefixed diagnostic, so callers never handle provider errors.
package llm

import (
	"context"

	"mailtriage/internal/config"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

// Message roles accepted by Invoke.
const (
	RoleUser      = "user"
	RoleSystem    = "system"
	RoleAssistant = "assistant"
)

// DisabledMessage is returned by every Invoke call when no API key is
// configured. It is deterministic so downstream interpretation stays stable.
const DisabledMessage = "[LLM disabled — missing GROQ_API_KEY]\nSet GROQ_API_KEY in your environment or .env file"

// ErrorPrefix marks replies that encode a provider or network failure,
// distinguishing them from the disabled-mode string.
const ErrorPrefix = "[LLM error] "

// Sampling temperature for all calls; low for near-deterministic labels.
const temperature = 0.2

// Message is a single role-tagged chat message
type Message struct {
	Role    string
	Content string
}

// Gateway is the single capability orchestrators depend on. Implementations
// must always return text and never an error.
type Gateway interface {
	Invoke(ctx context.Context, messages []Message, maxTokens int) string
}

// Client is the Groq-backed Gateway. Groq serves an OpenAI-compatible API, so
// the transport is a go-openai client pointed at the Groq base URL.
type Client struct {
	api    *openai.Client // nil when no credential is configured
	model  string
	logger zerolog.Logger
}

// NewClient creates a gateway from configuration. A missing GROQ_API_KEY is
// not an error: the client is constructed in disabled mode and reports it on
// every invocation.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	client := &Client{
		model:  cfg.GroqModel,
		logger: logger,
	}

	if cfg.GroqAPIKey == "" {
		logger.Warn().Msg("GROQ_API_KEY missing, LLM gateway running in disabled mode")
		return client
	}

	apiConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	apiConfig.BaseURL = cfg.GroqBaseURL
	client.api = openai.NewClientWithConfig(apiConfig)

	logger.Info().Str("model", client.model).Str("base_url", cfg.GroqBaseURL).Msg("LLM gateway initialized")
	return client
}

// Invoke submits the messages and returns the generated text verbatim. All
// failures are folded into the returned string.
func (c *Client) Invoke(ctx context.Context, messages []Message, maxTokens int) string {
	if c.api == nil {
		return DisabledMessage
	}

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("Chat completion failed")
		return ErrorPrefix + err.Error()
	}
	if len(resp.Choices) == 0 {
		c.logger.Error().Str("model", c.model).Msg("Chat completion returned no choices")
		return ErrorPrefix + "no choices in provider response"
	}

	return resp.Choices[0].Message.Content
}
