package domain

import "strings"

// Placeholder is the substitution marker a prompt template must contain
// exactly once.
const Placeholder = "{text}"

// BuildPrompt splices inputText into template at the placeholder and returns
// the final payload. The input is inserted verbatim: placeholder syntax inside
// it stays literal and is never re-expanded. Returns a TemplateError when the
// template does not contain the placeholder exactly once.
func BuildPrompt(template, inputText string) (string, error) {
	count := strings.Count(template, Placeholder)
	if count != 1 {
		return "", &TemplateError{Template: template, Count: count}
	}

	idx := strings.Index(template, Placeholder)
	return template[:idx] + inputText + template[idx+len(Placeholder):], nil
}
