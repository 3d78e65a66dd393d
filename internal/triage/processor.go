// Package triage holds the two orchestration workflows: processing an email
// (categorize + extract actions) and free-form agent drafting. Both resolve or
// receive a template, render it against the email, invoke the LLM gateway and
// interpret the reply. Only input validation fails hard; every other failure
// mode degrades into diagnostic text or a null interpretation.
package triage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"mailtriage/internal/llm"
	"mailtriage/internal/models"
	"mailtriage/internal/prompts"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// ErrMissingEmailBody is returned when a workflow is invoked without email
// body text. It is the only error that crosses the triage boundary.
var ErrMissingEmailBody = errors.New("email.body is required")

// Output bounds per call: one word for the category label, a JSON array of
// task objects for extraction.
const (
	categoryMaxTokens = 60
	actionsMaxTokens  = 400
)

// Resolver yields the active template body for a task kind
type Resolver interface {
	Resolve(ctx context.Context, kind string) string
}

// OutcomeStore persists processing outcomes
type OutcomeStore interface {
	InsertProcessedEmail(ctx context.Context, rec *models.ProcessedEmail) error
}

// ProcessResult is the outcome of one processing run. Actions is nil when the
// extraction reply could not be interpreted as a task list; ActionsRaw always
// holds the reply verbatim. StoreErr records a swallowed persistence failure
// and never affects the other fields.
type ProcessResult struct {
	Category   string
	ActionsRaw string
	Actions    []models.ActionItem
	StoreErr   error
}

// Processor runs the categorize + extract-actions workflow
type Processor struct {
	gateway  llm.Gateway
	resolver Resolver
	store    OutcomeStore
	logger   zerolog.Logger
}

// NewProcessor creates a processor with explicit dependencies
func NewProcessor(gateway llm.Gateway, resolver Resolver, store OutcomeStore, logger zerolog.Logger) *Processor {
	return &Processor{gateway: gateway, resolver: resolver, store: store, logger: logger}
}

// Process categorizes the email and extracts its actionable tasks. The two
// gateway calls run sequentially; both complete before persistence. The
// returned result is final before the best-effort insert, so a storage
// failure can never change it.
func (p *Processor) Process(ctx context.Context, email *models.InboundEmail) (*ProcessResult, error) {
	if email == nil || email.Body == "" {
		return nil, ErrMissingEmailBody
	}

	catTemplate := p.resolver.Resolve(ctx, prompts.KindCategorize)
	actTemplate := p.resolver.Resolve(ctx, prompts.KindExtractActions)

	subs := map[string]string{prompts.PlaceholderEmailBody: email.Body}
	catPrompt := prompts.Render(catTemplate, subs)
	actPrompt := prompts.Render(actTemplate, subs)

	catReply := p.gateway.Invoke(ctx, []llm.Message{{Role: llm.RoleUser, Content: catPrompt}}, categoryMaxTokens)
	actReply := p.gateway.Invoke(ctx, []llm.Message{{Role: llm.RoleUser, Content: actPrompt}}, actionsMaxTokens)

	result := &ProcessResult{
		Category:   strings.TrimSpace(catReply),
		ActionsRaw: actReply,
		Actions:    interpretActions(actReply),
	}

	result.StoreErr = p.persist(ctx, email, result)
	return result, nil
}

// interpretActions attempts a structured parse of the extraction reply. The
// model does not always return a bare array: it may wrap it in an object, a
// code fence or prose. findTaskArray digs the array out; anything that still
// does not decode as a task list yields nil and the raw text stays available
// on the result.
func interpretActions(raw string) []models.ActionItem {
	arr, ok := findTaskArray(strings.TrimSpace(raw))
	if !ok {
		return nil
	}

	var actions []models.ActionItem
	if err := json.Unmarshal([]byte(arr), &actions); err != nil {
		return nil
	}
	return actions
}

// findTaskArray returns the JSON array carried by the reply: the reply itself
// when it is a top-level array, the first array-valued field when the model
// wrapped it in an object, or the bracketed substring when the array is
// embedded in prose or a code fence.
func findTaskArray(trimmed string) (string, bool) {
	if gjson.Valid(trimmed) {
		parsed := gjson.Parse(trimmed)
		if parsed.IsArray() {
			return trimmed, true
		}
		if parsed.IsObject() {
			arr := ""
			parsed.ForEach(func(_, value gjson.Result) bool {
				if value.IsArray() {
					arr = value.Raw
					return false
				}
				return true
			})
			if arr != "" {
				return arr, true
			}
		}
		return "", false
	}

	start, end := strings.Index(trimmed, "["), strings.LastIndex(trimmed, "]")
	if start >= 0 && end > start {
		candidate := trimmed[start : end+1]
		if gjson.Valid(candidate) && gjson.Parse(candidate).IsArray() {
			return candidate, true
		}
	}
	return "", false
}

// persist records the outcome. Failures are logged and reported back on the
// result only; they never propagate.
func (p *Processor) persist(ctx context.Context, email *models.InboundEmail, result *ProcessResult) error {
	actionsJSON := result.ActionsRaw
	if result.Actions != nil {
		if encoded, err := json.Marshal(result.Actions); err == nil {
			actionsJSON = string(encoded)
		}
	}

	rec := &models.ProcessedEmail{
		ExternalID:  email.ID,
		Sender:      email.Sender,
		Subject:     email.Subject,
		Timestamp:   email.Timestamp,
		Body:        email.Body,
		Category:    result.Category,
		ActionsJSON: actionsJSON,
	}

	if err := p.store.InsertProcessedEmail(ctx, rec); err != nil {
		p.logger.Warn().Err(err).Str("external_id", email.ID).Msg("Failed to persist processed email")
		return err
	}
	return nil
}
