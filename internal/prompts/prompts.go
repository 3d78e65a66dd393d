// Package prompts owns prompt template resolution and rendering: which
// template body governs a given task kind, and how email content is
// substituted into it before the LLM call.
package prompts

// Recognized task kinds. Stored templates carry one of these in their type
// column; anything else is an untyped template that resolution never returns.
const (
	KindCategorize     = "categorize"
	KindExtractActions = "extract_actions"
	KindDraftReply     = "draft_reply"
)

// Placeholder names substituted by Render.
const (
	PlaceholderEmailBody       = "email_body"
	PlaceholderUserInstruction = "user_instruction"
)

const defaultCategorizeBody = "Categorize the email into one of these labels: Important, To-Do, Newsletter, Spam, Social.\n" +
	"Return only the label (one word).\n\nEmail:\n{email_body}"

const defaultExtractActionsBody = "Extract actionable tasks from the email. " +
	"Return a JSON array of objects with keys 'task', 'deadline', and 'assignee'. " +
	"If there are no actions, return an empty JSON array [].\n\nEmail:\n{email_body}"

const defaultDraftReplyBody = "Draft a concise, professional reply to the email below, written in the first person. " +
	"Return only the reply body text.\n\nEmail:\n{email_body}\n\nUser instruction:\n{user_instruction}"

// Default returns the built-in template body for a task kind. These are the
// last-resort bodies used when no stored template of the kind exists; unknown
// kinds have no default and yield an empty string.
func Default(kind string) string {
	switch kind {
	case KindCategorize:
		return defaultCategorizeBody
	case KindExtractActions:
		return defaultExtractActionsBody
	case KindDraftReply:
		return defaultDraftReplyBody
	}
	return ""
}
