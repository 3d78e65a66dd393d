package prompts

import "strings"

// Render substitutes named placeholders of the form {name} into a template
// body. Every occurrence of each supplied placeholder is replaced literally;
// placeholders with no matching key are left verbatim, so templates may omit
// optional ones. No escaping is applied; substituted email content flows into
// the prompt as-is.
func Render(body string, subs map[string]string) string {
	for name, value := range subs {
		body = strings.ReplaceAll(body, "{"+name+"}", value)
	}
	return body
}
