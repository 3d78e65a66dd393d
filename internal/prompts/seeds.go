package prompts

// Seed describes one built-in template inserted at startup when no template of
// its kind exists yet.
type Seed struct {
	Name    string
	Kind    string
	Content string
}

// DefaultSeeds returns the built-in template set, one per task kind. These are
// richer than the Default fallback bodies: they are the user-visible starting
// point for template editing.
func DefaultSeeds() []Seed {
	return []Seed{
		{
			Name: "Default Categorization Prompt",
			Kind: KindCategorize,
			Content: `Categorize the email into exactly one of these labels:
- Important
- To-Do
- Newsletter
- Spam
- Social

Rules:
- "Important": time-sensitive or high-impact information for the user.
- "To-Do": email clearly asks the user to perform a task (reply, prepare something, attend something, fix something, etc.).
- "Newsletter": bulk / marketing / digest / automated content.
- "Spam": phishing, scams, irrelevant promotions.
- "Social": informal messages from friends, social events, meetups.

Return only the label word (Important, To-Do, Newsletter, Spam, or Social).
Do not include any explanations or extra text.

Email:
{email_body}`,
		},
		{
			Name: "Default Action Extraction Prompt",
			Kind: KindExtractActions,
			Content: `You are an assistant that extracts clear, actionable tasks from an email.

For the given email, identify all tasks that the user (or others) is expected to do.

Return a JSON array of objects with this exact structure:
[
  {
    "task": "short description of the action",
    "deadline": "YYYY-MM-DD if mentioned, otherwise empty string",
    "assignee": "who should do it (user, sender, or a named person) or empty string"
  }
]

Guidelines:
- If there are no clear actions, return an empty JSON array: [].
- If a deadline is relative (e.g., "by Friday"), approximate it if possible from the context; otherwise use an empty string.
- Be concise but specific in the "task" field.

Email:
{email_body}`,
		},
		{
			Name: "Default Draft Reply Prompt",
			Kind: KindDraftReply,
			Content: `You are an assistant that drafts professional email replies.

Given the original email and a brief user instruction (what the user wants to achieve), draft a concise, polite reply.

Write in the first person ("I"), and:
- Acknowledge the sender.
- Address each request or question clearly.
- Keep tone professional and friendly.
- Keep the length moderate (5-10 sentences).

Return only the email body text. Do not include subject, greetings like "Subject:", or any JSON.

Original email:
{email_body}

User instruction:
{user_instruction}`,
		},
	}
}
